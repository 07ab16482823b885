// Package dashboard serves the HTML overview of the most recent lots.
package dashboard

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"traza/pkg/views"
)

const Title = "Traceability Dashboard"

type lotLister interface {
	List(ctx context.Context, limit int) ([]views.LotView, error)
}

type DashboardCtrl struct {
	lots  lotLister
	limit int
}

func New(lots lotLister, limit int) *DashboardCtrl {
	if limit <= 0 {
		limit = 10
	}
	return &DashboardCtrl{lots: lots, limit: limit}
}

type page struct {
	Title string
	Total int
	Lots  []views.LotView
}

func (h *DashboardCtrl) Show(c echo.Context) error {
	lots, err := h.lots.List(c.Request().Context(), h.limit)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{Title: Title, Total: len(lots), Lots: lots}); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

var tmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p id="total">{{.Total}}</p>
{{if .Lots}}
<table id="lotes">
<thead>
<tr><th>Código</th><th>Finca</th><th>Variedad</th><th>Hectáreas</th><th>Cosecha</th><th>Responsable</th><th>Orgánico</th></tr>
</thead>
<tbody>
{{range .Lots}}<tr data-id="{{.ID}}">
<td class="codigo"><a href="/api/lotes/{{.ID}}/">{{.Code}}</a></td>
<td class="finca">{{.Farm}}</td>
<td class="variedad">{{.Variety}}</td>
<td class="hectareas">{{.Hectares}}</td>
<td class="cosecha">{{.HarvestDate}}</td>
<td class="responsable">{{.Responsible}}</td>
<td class="organico">{{if .Organic}}sí{{else}}no{{end}}</td>
</tr>
{{end}}</tbody>
</table>
{{else}}
<p id="vacio">No hay lotes registrados.</p>
{{end}}
</body>
</html>
`))
