// Package pdfform fills the AcroForm fields of a PDF character sheet template.
//
// Fields are matched by their fully qualified form field name, the same names
// the sheet projector emits ("CharacterName", "Check Box 11"). Text values go
// to text, date and combo box fields; checked names tick check boxes. Names
// the template does not define are ignored.
package pdfform

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

const (
	// Extension is the file extension of filled sheets
	Extension = "pdf"

	pdfMagic = "%PDF-"
)

// form field groups in pdfcpu's form export
const (
	groupText     = "textfield"
	groupDate     = "datefield"
	groupCombo    = "combobox"
	groupCheckBox = "checkbox"
)

var disableConfigDir sync.Once

// Form is a sheet.FieldSink backed by a PDF template. Writes are recorded and
// applied to a copy of the template by WriteTo.
type Form struct {
	template []byte
	fields   *sheet.Fields
	conf     *model.Configuration
}

// New creates a form over the bytes of a PDF template
func New(template []byte) (*Form, error) {
	if !bytes.HasPrefix(bytes.TrimLeft(template, "\x00\t\r\n "), []byte(pdfMagic)) {
		return nil, errors.InvalidArgument("template is not a PDF document")
	}

	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Form{
		template: template,
		fields:   sheet.NewFields(),
		conf:     conf,
	}, nil
}

// Open loads a PDF template from disk
func Open(path string) (*Form, error) {
	if path == "" {
		return nil, errors.InvalidArgument("template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("template %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read template %s", path)
	}

	form, err := New(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid template %s", path)
	}
	return form, nil
}

// SetText implements sheet.FieldSink
func (f *Form) SetText(name, value string) error {
	f.fields.SetText(name, value)
	return nil
}

// SetChecked implements sheet.FieldSink
func (f *Form) SetChecked(name string) error {
	f.fields.SetChecked(name)
	return nil
}

// Fields returns the values recorded so far
func (f *Form) Fields() *sheet.Fields {
	return f.fields
}

// WriteTo writes the filled PDF. When no recorded field exists in the
// template, the template is written unchanged.
func (f *Form) WriteTo(w io.Writer) (int64, error) {
	var desc bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(f.template), &desc, "template", f.conf); err != nil {
		return 0, errors.InvalidArgumentf("failed to read template form: %v", err)
	}

	filled, matched, err := Fill(desc.Bytes(), f.fields)
	if err != nil {
		return 0, err
	}

	recorded := len(f.fields.Text) + len(f.fields.Checked)
	if recorded > matched {
		slog.Debug("Template has no field for some sheet values", "recorded", recorded, "matched", matched)
	}

	if matched == 0 {
		n, err := w.Write(f.template)
		if err != nil {
			return int64(n), errors.Wrap(err, "failed to write sheet")
		}
		return int64(n), nil
	}

	var out bytes.Buffer
	if err := api.FillForm(bytes.NewReader(f.template), bytes.NewReader(filled), &out, f.conf); err != nil {
		return 0, errors.Wrap(err, "failed to fill template form")
	}

	n, err := out.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, "failed to write sheet")
	}
	return n, nil
}

// SaveAs writes the filled PDF to a file
func (f *Form) SaveAs(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err := f.WriteTo(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to save sheet %s", path)
	}
	return nil
}

// Fill rewrites a pdfcpu form export so it carries only the fields present
// in fields, with their values set. It returns the rewritten export and the
// number of template fields that received a value.
func Fill(desc []byte, fields *sheet.Fields) ([]byte, int, error) {
	dec := json.NewDecoder(bytes.NewReader(desc))
	dec.UseNumber()

	var group map[string]any
	if err := dec.Decode(&group); err != nil {
		return nil, 0, errors.Malformed(err, "form export")
	}

	forms, _ := group["forms"].([]any)
	matched := 0
	kept := make([]any, 0, len(forms))
	for _, raw := range forms {
		form, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		out := make(map[string]any)
		for key, list := range form {
			entries, ok := list.([]any)
			if !ok {
				continue
			}

			var set []any
			for _, rawEntry := range entries {
				entry, ok := rawEntry.(map[string]any)
				if !ok {
					continue
				}
				if fillEntry(key, entry, fields) {
					set = append(set, entry)
				}
			}
			if len(set) > 0 {
				out[key] = set
				matched += len(set)
			}
		}
		if len(out) > 0 {
			kept = append(kept, out)
		}
	}

	group["forms"] = kept
	data, err := json.Marshal(group)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to encode form values")
	}
	return data, matched, nil
}

// fillEntry sets the value of one exported field, reporting whether it was set
func fillEntry(group string, entry map[string]any, fields *sheet.Fields) bool {
	name, _ := entry["name"].(string)
	if name == "" {
		return false
	}

	switch group {
	case groupText, groupDate, groupCombo:
		value, ok := fields.Text[name]
		if !ok {
			return false
		}
		entry["value"] = value
	case groupCheckBox:
		if !fields.Checked[name] {
			return false
		}
		entry["value"] = true
	default:
		return false
	}
	return true
}

var _ sheet.FieldSink = (*Form)(nil)
