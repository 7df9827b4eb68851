package wedding

import "strings"

// assetFolderToken is the reserved placeholder authors put in image paths so
// one document can serve multiple events.
const assetFolderToken = "./photos/[event-folder]"

// ApplyEventFolder rewrites every occurrence of the event-folder placeholder
// in the three image slots and all gallery entries to the event-scoped folder
// name. Without an event identifier the document is returned unchanged and
// any placeholder is left as-is.
func ApplyEventFolder(doc Document, event string) Document {
	if event == "" {
		return doc
	}
	folder := "./photos/" + EventFolder(event)
	rewrite := func(path string) string {
		return strings.ReplaceAll(path, assetFolderToken, folder)
	}

	out := doc.Clone()
	out.Images.Hero = rewrite(out.Images.Hero)
	out.Images.Groom = rewrite(out.Images.Groom)
	out.Images.Bride = rewrite(out.Images.Bride)
	for i, img := range out.Gallery {
		out.Gallery[i] = rewrite(img)
	}
	return out
}
