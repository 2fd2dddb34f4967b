package importer

import (
	"fmt"
	"net/url"
	"strings"
)

// Spell icons, matched against the lower-cased spell name in order
var spellIcons = []struct {
	keywords []string
	icon     string
}{
	{[]string{"fire", "flame", "burn", "heat"}, "icons/magic/fire/beam-jet-stream-embers.webp"},
	{[]string{"ice", "frost", "cold", "freeze"}, "icons/magic/water/projectile-ice-shard.webp"},
	{[]string{"light", "sun", "day", "beam"}, "icons/magic/light/beam-rays-yellow-orange.webp"},
	{[]string{"dark", "shadow", "night", "necro"}, "icons/magic/unholy/projectile-bolts-salvo-purple.webp"},
	{[]string{"heal", "cure", "life", "restore"}, "icons/magic/life/heart-cross-strong-green.webp"},
	{[]string{"protect", "shield", "armor", "guard"}, "icons/magic/defensive/shield-barrier-blue.webp"},
	{[]string{"mind", "thought", "psychic", "brain"}, "icons/magic/control/energy-stream-purple.webp"},
	{[]string{"thunder", "lightning", "storm", "shock"}, "icons/magic/lightning/bolt-strike-blue.webp"},
	{[]string{"acid", "poison", "toxic", "venom"}, "icons/magic/acid/splash-blob-purple.webp"},
	{[]string{"fly", "wind", "air", "feather"}, "icons/magic/air/wind-stream-white.webp"},
}

// UnknownSpellIcon is used when no keyword matches
const UnknownSpellIcon = "icons/magic/symbols/question-stone-yellow.webp"

// GuessSpellIcon picks an icon for an unresolved spell from keywords in its name
func GuessSpellIcon(name string) string {
	n := strings.ToLower(name)
	for _, group := range spellIcons {
		for _, kw := range group.keywords {
			if strings.Contains(n, kw) {
				return group.icon
			}
		}
	}
	return UnknownSpellIcon
}

// SpellSearchURL returns a web search for the spell on 5e.tools
func SpellSearchURL(name string) string {
	q := fmt.Sprintf(`site:5e.tools "%s"`, name)
	return "https://www.google.com/search?q=" + url.QueryEscape(q)
}

// spellPlaceholderDescription is the description of a spell no catalog knew
func spellPlaceholderDescription(name string) string {
	return "<p>Imported from 5e Companion App. Details not found in compendiums.</p>\n" +
		`<p><b><a href="` + SpellSearchURL(name) + `" target="_blank">` +
		`<i class="fas fa-search"></i> Search on 5e.tools</a></b></p>`
}
