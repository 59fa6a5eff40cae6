// Package pdf genera el extracto de una cuenta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del titular + CPF  │  EXTRATO + fecha emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Tipo | Valor                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO ACTUAL                                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appstatement "github.com/jhoicas/ledger-api/internal/application/statement"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

var _ appstatement.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebit   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa statement.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	loc *time.Location
}

// NewMarotoStatementGenerator construye el generador. Las fechas se imprimen en loc.
func NewMarotoStatementGenerator(loc *time.Location) *MarotoStatementGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoStatementGenerator{loc: loc}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	customer *entity.Customer,
	balance decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato "+customer.CPF, true).
		WithAuthor(customer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(customer, time.Now().In(g.loc)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(customer.Statement) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma operação registrada.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range g.operationRows(customer.Statement) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(balanceRow(balance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: titular + CPF (izq) y título + fecha de emisión (der).
func headerRow(customer *entity.Customer, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CPF: "+customer.CPF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New("Conta: "+customer.ID, props.Text{
				Size: 7, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EXTRATO DE CONTA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de operaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 3, align.Left),
		h("Descrição", 5, align.Left),
		h("Tipo", 1, align.Center),
		h("Valor", 3, align.Right),
	)
}

// operationRows: una fila por operación, en orden de inserción. Los débitos van en rojo y con signo.
func (g *MarotoStatementGenerator) operationRows(ops []entity.Operation) []core.Row {
	result := make([]core.Row, 0, len(ops))
	for _, op := range ops {
		value := op.Amount
		valueColor := colorPrimary
		kind := "C"
		if op.Type == entity.OperationTypeDebit {
			value = value.Neg()
			valueColor = colorDebit
			kind = "D"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				op.CreatedAt.In(g.loc).Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				nonEmpty(op.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				kind,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(value),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: valueColor},
			)),
		))
	}
	return result
}

// balanceRow: saldo final alineado a la derecha.
func balanceRow(balance decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("SALDO ATUAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(balance), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea en reales con puntos de miles y coma decimal.
// Ej: 1234567.5 → "R$ 1.234.567,50", -30 → "-R$ 30,00"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "R$ " + string(buf) + "," + frac
}
