package view

import (
	"io"
	"text/template"

	"github.com/nikolayk812/dessert-cart/internal/session"
	"go.uber.org/zap"
)

var screenTemplate = template.Must(template.New("screen").Parse(`== Desserts ==
{{range .Cards}}- {{.Name}} [{{.Category}}] {{.Price}}{{if .ShowQuantitySelector}}  (- {{.Quantity}} +){{end}}{{if .ShowAddButton}}  [Add to cart]{{end}}
{{end}}
{{with .Cart}}{{if .Empty}}Your Cart (0)
{{.EmptyMessage}}
{{else}}{{.Header}}
{{range .Lines}}  {{.Name}}  {{.Quantity}}x @ {{.UnitPrice}}  {{.LineTotal}}
{{end}}Order Total: {{.OrderTotal}}
{{if .ShowConfirmButton}}[Confirm Order]
{{end}}{{end}}{{end}}{{with .Confirmation}}{{if .Visible}}
== Order Confirmed ==
We hope you enjoy your food!
{{range .Lines}}  {{.Name}}  {{.Quantity}}x @ {{.UnitPrice}}  {{.LineTotal}}
{{end}}Order Total: {{.OrderTotal}}
[Start New Order]
{{end}}{{end}}`))

// TextRenderer writes every session snapshot as plain text.
type TextRenderer struct {
	w   io.Writer
	log *zap.Logger
}

func NewTextRenderer(w io.Writer, log *zap.Logger) *TextRenderer {
	if log == nil {
		log = zap.NewNop()
	}

	return &TextRenderer{w: w, log: log}
}

func (r *TextRenderer) Render(s session.State) {
	if err := screenTemplate.Execute(r.w, Build(s)); err != nil {
		r.log.Warn("render failed", zap.Error(err))
	}
}
