// Package statement agrupa los cálculos puros sobre el extracto de una cuenta.
package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// DateLayout formato de fecha aceptado en los filtros (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Balance recorre el extracto desde cero: los créditos suman y los débitos restan.
func Balance(ops []entity.Operation) decimal.Decimal {
	balance := decimal.Zero
	for _, op := range ops {
		if op.Type == entity.OperationTypeCredit {
			balance = balance.Add(op.Amount)
		} else {
			balance = balance.Sub(op.Amount)
		}
	}
	return balance
}

// ParseDate interpreta "YYYY-MM-DD" como medianoche en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// FilterByDate devuelve las operaciones cuya fecha calendario (en la zona de day) coincide con day.
// Nunca devuelve nil para que el JSON sea [] y no null.
func FilterByDate(ops []entity.Operation, day time.Time) []entity.Operation {
	loc := day.Location()
	y, m, d := day.Date()
	out := make([]entity.Operation, 0)
	for _, op := range ops {
		oy, om, od := op.CreatedAt.In(loc).Date()
		if oy == y && om == m && od == d {
			out = append(out, op)
		}
	}
	return out
}
