package character

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-companion/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	itemsKeySuffix     = ":items"
	characterIndexKey  = "character:index"
	worldItemsKey      = "item:world"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// worldEntry is the value stored in the world item index
type worldEntry struct {
	Owner string      `json:"owner"`
	Item  *actor.Item `json:"item"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ids    idgen.Generator
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	IDGen  idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ids := cfg.IDGen
	if ids == nil {
		ids = idgen.NewDocument()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ids:    ids,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func itemsKey(id string) string {
	return characterKeyPrefix + id + itemsKeySuffix
}

func worldField(itemType, name string) string {
	return itemType + "|" + cases.Fold().String(name)
}

func (r *redisRepository) CreateCharacter(ctx context.Context, input CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	char := *input.Character
	if char.ID == "" {
		char.ID = r.ids.Generate()
	}
	key := characterKey(char.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", char.ID)
	}

	data, err := json.Marshal(&char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	now := r.clock.Now()
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, characterIndexKey, goredis.Z{Score: float64(now.UnixNano()), Member: char.ID})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.Debug("Created character", "character_id", char.ID, "name", char.Name)
	return &CreateCharacterOutput{Character: &char, CreatedAt: now}, nil
}

func (r *redisRepository) AttachItems(ctx context.Context, input AttachItemsInput) (*AttachItemsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	exists, err := r.client.Exists(ctx, characterKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.CharacterID)
	}

	if len(input.Items) == 0 {
		return &AttachItemsOutput{}, nil
	}

	stored := make([]*actor.Item, 0, len(input.Items))
	encoded := make([]any, 0, len(input.Items))
	world := make(map[string]string)
	for i, item := range input.Items {
		if item == nil {
			return nil, errors.InvalidArgumentf("item %d cannot be nil", i)
		}
		clone := item.Clone()
		if clone.ID == "" {
			clone.ID = r.ids.Generate()
		}

		data, err := json.Marshal(clone)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item %s", clone.Name)
		}
		stored = append(stored, clone)
		encoded = append(encoded, data)

		// placeholders are not reference data; a later import must see its own miss
		if clone.IsPlaceholder() {
			continue
		}
		field := worldField(clone.Type, clone.Name)
		if _, seen := world[field]; seen {
			continue
		}
		entry, err := json.Marshal(worldEntry{Owner: input.CharacterID, Item: clone})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal world entry for %s", clone.Name)
		}
		world[field] = string(entry)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, itemsKey(input.CharacterID), encoded...)
	for field, entry := range world {
		pipe.HSetNX(ctx, worldItemsKey, field, entry)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to attach items")
	}

	slog.Debug("Attached items", "character_id", input.CharacterID, "count", len(stored))
	return &AttachItemsOutput{Items: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	char, err := r.getCharacter(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: char, Items: items}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRange(ctx, characterIndexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*goredis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, characterKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !stderrors.Is(err, redisclient.Nil) {
		return nil, errors.Wrapf(err, "failed to load characters")
	}

	chars := make([]*actor.Character, 0, len(ids))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			slog.Warn("Character index references missing record", "character_id", ids[i])
			continue
		}
		var char actor.Character
		if err := json.Unmarshal(data, &char); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", ids[i])
		}
		chars = append(chars, &char)
	}

	return &ListOutput{Characters: chars}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	items, err := r.getItemsIfCharacterExists(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var owned []string
	for _, item := range items {
		field := worldField(item.Type, item.Name)
		raw, err := r.client.HGet(ctx, worldItemsKey, field).Result()
		if err != nil {
			continue
		}
		var entry worldEntry
		if json.Unmarshal([]byte(raw), &entry) == nil && entry.Owner == input.ID {
			owned = append(owned, field)
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID), itemsKey(input.ID))
	pipe.ZRem(ctx, characterIndexKey, input.ID)
	if len(owned) > 0 {
		pipe.HDel(ctx, worldItemsKey, owned...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) FindItem(ctx context.Context, input FindItemInput) (*FindItemOutput, error) {
	if input.Name == "" {
		return &FindItemOutput{}, nil
	}

	raw, err := r.client.HGet(ctx, worldItemsKey, worldField(input.Type, input.Name)).Result()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return &FindItemOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to find item")
	}

	var entry worldEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world item")
	}
	return &FindItemOutput{Item: entry.Item}, nil
}

func (r *redisRepository) getCharacter(ctx context.Context, id string) (*actor.Character, error) {
	result, err := r.client.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char actor.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}
	return &char, nil
}

func (r *redisRepository) getItems(ctx context.Context, id string) ([]*actor.Item, error) {
	raw, err := r.client.LRange(ctx, itemsKey(id), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get items")
	}

	items := make([]*actor.Item, 0, len(raw))
	for _, data := range raw {
		var item actor.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item")
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *redisRepository) getItemsIfCharacterExists(ctx context.Context, id string) ([]*actor.Item, error) {
	exists, err := r.client.Exists(ctx, characterKey(id)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", id)
	}
	return r.getItems(ctx, id)
}
