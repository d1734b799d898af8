package diagram

import (
	"strings"

	"github.com/paperboard/paperboard/pkg/graph"
)

// FormatLabel picks the best display text from a set of localized labels.
// Resolution order: exact match on the configured language, then a label
// whose language shares the configured primary subtag (so "de" matches
// "de-CH"), then the first label, then the fallback.
func (m *Model) FormatLabel(labels []graph.LocalizedText, fallback string) string {
	return FormatLabel(labels, m.cfg.Labels.DefaultLang, fallback)
}

// FormatLabel resolves labels against an explicit language. See
// [Model.FormatLabel].
func FormatLabel(labels []graph.LocalizedText, lang, fallback string) string {
	if len(labels) == 0 {
		return fallback
	}
	for _, l := range labels {
		if strings.EqualFold(l.Lang, lang) {
			return l.Text
		}
	}
	primary := primarySubtag(lang)
	if primary != "" {
		for _, l := range labels {
			if strings.EqualFold(primarySubtag(l.Lang), primary) {
				return l.Text
			}
		}
	}
	return labels[0].Text
}

func primarySubtag(lang string) string {
	if i := strings.IndexByte(lang, '-'); i >= 0 {
		return lang[:i]
	}
	return lang
}
