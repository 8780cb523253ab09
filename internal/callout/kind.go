package callout

import "strings"

// Kind describes one registered container: the name used after the fence
// marker (also the CSS class) and the title used when the fence has none.
type Kind struct {
	Name         string
	DefaultTitle string
}

var (
	// Question renders `::: question` containers.
	Question = Kind{Name: "question", DefaultTitle: "问题"}
	// Example renders `::: example` containers.
	Example = Kind{Name: "example", DefaultTitle: "示例"}
)

// DefaultKinds returns the containers registered when no kinds are configured.
func DefaultKinds() []Kind {
	return []Kind{Question, Example}
}

const closeHTML = "</div>\n"

// Title derives the container title from the raw info text of its opening
// fence. The kind name is stripped when it leads the info text.
func Title(kind Kind, info string) string {
	custom := strings.TrimSpace(info)
	custom = strings.TrimSpace(strings.TrimPrefix(custom, kind.Name))

	if len(custom) != 0 {
		return custom
	}

	return kind.DefaultTitle
}

// Open returns the opening HTML fragment for a container with the given info
// text. The title is written verbatim.
func (k Kind) Open(info string) string {
	return openHTML(k.Name, Title(k, info))
}

// Close returns the closing HTML fragment. It is the same for every kind.
func (k Kind) Close() string {
	return closeHTML
}

func openHTML(name, title string) string {
	return `<div class="hint-container ` + name + `">` + "\n" +
		`<p class="hint-container-title">` + title + "</p>\n"
}

// RenderOpen renders the opening fragment for the named kind. Builtin kinds
// use their default titles; any other name falls back to the name itself.
func RenderOpen(name, info string) string {
	return lookup(name).Open(info)
}

// RenderClose renders the closing fragment; name is ignored.
func RenderClose(_ string) string {
	return closeHTML
}

func lookup(name string) Kind {
	for _, kind := range DefaultKinds() {
		if kind.Name == name {
			return kind
		}
	}

	return Kind{Name: name, DefaultTitle: name}
}
