// Package numbering genera los números de factura legibles que ve el cliente
// en el recibo. El formato conserva el prefijo y el timestamp del número
// clásico (BILL-<millis>) y le agrega un contador monotónico para que dos
// llamadas en el mismo milisegundo no colisionen. La unicidad definitiva la
// garantiza el constraint UNIQUE de la tabla bills; ante colisión el motor
// reintenta con un número nuevo.
package numbering

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultPrefix prefijo por defecto del número de factura.
const DefaultPrefix = "BILL"

// Generator produce números de factura únicos por invocación.
// Es seguro para uso concurrente.
type Generator struct {
	prefix string
	seq    atomic.Uint64
}

// New construye el generador. Prefijo vacío usa DefaultPrefix.
func New(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// Next devuelve el siguiente número: PREFIX-<unix millis>-<NNNN>.
// NNNN es un contador que envuelve en 10000; dentro de un mismo milisegundo
// soporta hasta 10000 números distintos.
func (g *Generator) Next() string {
	n := g.seq.Add(1) % 10000
	return fmt.Sprintf("%s-%d-%04d", g.prefix, time.Now().UnixMilli(), n)
}
