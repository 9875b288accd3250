// Package render produces the HTML listing view of questions joined with
// their first answer. The core contract upstream is only "an ordered sequence
// of (question, optional answer) pairs"; everything about presentation lives
// here, behind html/template rather than string concatenation, so output is
// escaped and the markup is reviewable in one place.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// NoAnswerPlaceholder is rendered for questions without any answer.
const NoAnswerPlaceholder = "No answer provided"

const listingTmpl = `<!DOCTYPE html>
<html>
<head><title>Questions</title></head>
<body>
<h1>Questions</h1>
<ul>
{{- range .Items}}
<li>
<h2>{{.Title}}</h2>
<p>{{.Content}}</p>
<p>Question ID: {{.ID}}</p>
<p>Tags: {{if .Tags}}{{join .Tags ", "}}{{else}}No tags{{end}}</p>
<p>Answer: {{if .Answer}}{{.Answer}}{{else}}` + NoAnswerPlaceholder + `{{end}}</p>
</li>
{{- end}}
</ul>
</body>
</html>
`

type listingItem struct {
	ID      int
	Title   string
	Content string
	Tags    []string
	Answer  string
}

// Listing renders question/answer pairs as a complete HTML document.
type Listing struct {
	tmpl *template.Template
}

// NewListing parses the listing template. It panics on a malformed template,
// which can only happen at build time.
func NewListing() *Listing {
	t := template.Must(template.New("listing").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(listingTmpl))
	return &Listing{tmpl: t}
}

// Render produces the HTML page for the given pairs. Tags are shown in
// collated order for a stable page; their stored order carries no meaning.
func (l *Listing) Render(pairs []domain.QuestionWithAnswer) ([]byte, error) {
	items := make([]listingItem, 0, len(pairs))
	coll := collate.New(language.English)
	for _, p := range pairs {
		it := listingItem{
			ID:      p.Question.ID,
			Title:   p.Question.Title,
			Content: p.Question.Content,
		}
		if len(p.Question.Tags) > 0 {
			tags := append([]string(nil), p.Question.Tags...)
			coll.SortStrings(tags)
			it.Tags = tags
		}
		if p.Answer != nil {
			it.Answer = p.Answer.Content
		}
		items = append(items, it)
	}

	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, struct{ Items []listingItem }{items}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
