package usecase

import (
	"fmt"
	"strings"
)

// TemplateParams are the user-supplied rendering knobs forwarded to the
// PDF generation step alongside the filtered resume.
type TemplateParams struct {
	FontSize string                 `json:"fontSize,omitempty"`
	Accent   string                 `json:"accent,omitempty"`
	Spacing  string                 `json:"spacing,omitempty"`
	Locale   string                 `json:"locale,omitempty"`
	Other    map[string]interface{} `json:"-"`
}

// ToMap converts the typed params back into a map for the render
// service payload.
func (p *TemplateParams) ToMap() map[string]interface{} {
	out := map[string]interface{}{}
	if p == nil {
		return out
	}
	if p.FontSize != "" {
		out["fontSize"] = p.FontSize
	}
	if p.Accent != "" {
		out["accent"] = p.Accent
	}
	if p.Spacing != "" {
		out["spacing"] = p.Spacing
	}
	if p.Locale != "" {
		out["locale"] = p.Locale
	}
	for k, v := range p.Other {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

// NewTemplateParamsFromMap converts a generic map into TemplateParams,
// normalizing the common input shapes (bare numbers for sizes, mixed
// case accent values).
func NewTemplateParamsFromMap(m map[string]interface{}) *TemplateParams {
	out := &TemplateParams{Other: map[string]interface{}{}}
	if m == nil {
		return out
	}

	asSize := func(v interface{}) string {
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				return ""
			}
			// bare "11" means points
			if !strings.HasSuffix(s, "pt") && !strings.HasSuffix(s, "px") && !strings.HasSuffix(s, "em") {
				return s + "pt"
			}
			return s
		case float64:
			return fmt.Sprintf("%gpt", t)
		case int:
			return fmt.Sprintf("%dpt", t)
		default:
			return ""
		}
	}

	if v, ok := m["fontSize"]; ok {
		out.FontSize = asSize(v)
	}
	if v, ok := m["spacing"]; ok {
		out.Spacing = asSize(v)
	}
	if v, ok := m["accent"]; ok {
		if s, ok := v.(string); ok {
			out.Accent = strings.ToLower(strings.TrimSpace(s))
		}
	}
	if v, ok := m["locale"]; ok {
		if s, ok := v.(string); ok {
			out.Locale = strings.TrimSpace(s)
		}
	}

	// preserve other keys
	for k, v := range m {
		switch k {
		case "fontSize", "spacing", "accent", "locale":
			continue
		}
		out.Other[k] = v
	}
	return out
}
