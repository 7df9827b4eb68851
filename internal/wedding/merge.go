package wedding

import "github.com/amore-wedding/invite/internal/mapurl"

// Merge combines the default document with an override document and returns a
// complete configuration. The merge is two-tier: top-level fields take the
// override's value whenever it is present (a present empty string or empty
// array is authoritative), while the grouped fields (location, images, theme,
// fonts, visuals) merge one level deep so an override supplying only one
// sub-field keeps the default values of its siblings. Arrays replace
// wholesale, never element-wise. Localized fields fill any missing language
// tag from the default so no tag ever ends up empty. The merged map URL is
// always passed through the normalizer.
//
// Merge is deterministic: the result is a pure function of its inputs.
func Merge(def Document, ov *Override) Document {
	out := def.Clone()
	if ov == nil {
		out.Location.MapURL = mapurl.Normalize(out.Location.MapURL)
		return out
	}

	out.GroomName = mergeLocalized(def.GroomName, ov.GroomName)
	out.BrideName = mergeLocalized(def.BrideName, ov.BrideName)
	if ov.Date != nil {
		out.Date = *ov.Date
	}
	if ov.ShowCountdown != nil {
		out.ShowCountdown = *ov.ShowCountdown
	}
	if ov.RSVPDeadline != nil {
		out.RSVPDeadline = *ov.RSVPDeadline
	}
	out.Location = mergeLocation(def.Location, ov.Location)
	out.Message = mergeLocalized(def.Message, ov.Message)
	if ov.GoogleFormURL != nil {
		out.GoogleFormURL = *ov.GoogleFormURL
	}
	if ov.GoogleScriptURL != nil {
		out.GoogleScriptURL = *ov.GoogleScriptURL
	}
	if ov.ShowSchedule != nil {
		out.ShowSchedule = *ov.ShowSchedule
	}
	if ov.Schedule != nil {
		out.Schedule = append([]ScheduleItem{}, *ov.Schedule...)
	}
	if ov.FAQ != nil {
		out.FAQ = append([]FAQItem{}, *ov.FAQ...)
	}
	if ov.ShowGallery != nil {
		out.ShowGallery = *ov.ShowGallery
	}
	if ov.Gallery != nil {
		out.Gallery = append([]string{}, *ov.Gallery...)
	}
	if ov.MusicURL != nil {
		out.MusicURL = *ov.MusicURL
	}
	out.Images = mergeImages(def.Images, ov.Images)
	out.Theme = mergeTheme(def.Theme, ov.Theme)
	out.Fonts = mergeFonts(def.Fonts, ov.Fonts)
	out.Visuals = mergeVisuals(def.Visuals, ov.Visuals)
	return out
}

// mergeLocalized prefers the override but degrades tag by tag to the default
// value, so a partial translation never leaves a language blank.
func mergeLocalized(def LocalizedString, ov *LocalizedString) LocalizedString {
	if ov == nil {
		return def
	}
	out := *ov
	if out.EN == "" {
		out.EN = def.EN
	}
	if out.JA == "" {
		out.JA = def.JA
	}
	if out.MY == "" {
		out.MY = def.MY
	}
	return out
}

func mergeLocation(def Location, ov *LocationOverride) Location {
	out := def
	raw := def.MapURL
	if ov != nil {
		out.Name = mergeLocalized(def.Name, ov.Name)
		out.Address = mergeLocalized(def.Address, ov.Address)
		if ov.MapURL != nil && *ov.MapURL != "" {
			raw = *ov.MapURL
		}
	}
	out.MapURL = mapurl.Normalize(raw)
	return out
}

func mergeImages(def Images, ov *ImagesOverride) Images {
	out := def
	if ov == nil {
		return out
	}
	if ov.Hero != nil {
		out.Hero = *ov.Hero
	}
	if ov.Groom != nil {
		out.Groom = *ov.Groom
	}
	if ov.Bride != nil {
		out.Bride = *ov.Bride
	}
	return out
}

func mergeTheme(def Theme, ov *ThemeOverride) Theme {
	out := def
	if ov == nil {
		return out
	}
	if ov.Primary != nil {
		out.Primary = *ov.Primary
	}
	if ov.Text != nil {
		out.Text = *ov.Text
	}
	if ov.BackgroundTint != nil {
		out.BackgroundTint = *ov.BackgroundTint
	}
	return out
}

func mergeFonts(def FontConfig, ov *FontOverride) FontConfig {
	out := def
	if ov == nil {
		return out
	}
	if ov.EN != nil {
		out.EN = *ov.EN
	}
	if ov.JA != nil {
		out.JA = *ov.JA
	}
	if ov.MY != nil {
		out.MY = *ov.MY
	}
	return out
}

func mergeVisuals(def Visuals, ov *VisualsOverride) Visuals {
	out := def
	if ov == nil {
		return out
	}
	if ov.EnableAnimations != nil {
		out.EnableAnimations = *ov.EnableAnimations
	}
	if ov.EnableEnvelope != nil {
		out.EnableEnvelope = *ov.EnableEnvelope
	}
	return out
}
