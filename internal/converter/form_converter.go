package converter

import (
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/form"
)

func NotificationToResponse(n form.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
	}
}

// SchemaToResponse renders a schema. Enum fields list their fixed options;
// reference fields take theirs from references, keyed by field name.
func SchemaToResponse(s *form.Schema, references map[string][]dto.OptionResponse) *dto.FormResponse {
	fields := make([]dto.FieldResponse, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = dto.FieldResponse{
			Name:      f.Name,
			Label:     f.Label,
			Kind:      string(f.Kind),
			Required:  f.Required,
			MaxLength: f.MaxLength,
		}
		switch f.Kind {
		case form.KindEnum:
			opts := make([]dto.OptionResponse, len(f.Options))
			for j, o := range f.Options {
				opts[j] = dto.OptionResponse{Value: o, Label: o}
			}
			fields[i].Options = opts
		case form.KindReference:
			fields[i].Options = references[f.Name]
		}
	}
	return &dto.FormResponse{Entity: string(s.Entity), Fields: fields}
}
