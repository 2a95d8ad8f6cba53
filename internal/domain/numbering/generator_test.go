package numbering_test

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-pos/internal/domain/numbering"
)

func TestNext_Format(t *testing.T) {
	g := numbering.New("BILL")
	num := g.Next()

	// PREFIX-<unix millis>-<NNNN>
	re := regexp.MustCompile(`^BILL-\d{13}-\d{4}$`)
	assert.Regexp(t, re, num)
}

func TestNext_TimestampDelRelojActual(t *testing.T) {
	g := numbering.New("BILL")

	before := time.Now().UnixMilli()
	num := g.Next()
	after := time.Now().UnixMilli()

	parts := strings.Split(num, "-")
	require.Len(t, parts, 3)
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}

func TestNext_PrefijoPersonalizado(t *testing.T) {
	g := numbering.New("TIENDA")
	assert.Regexp(t, `^TIENDA-\d{13}-\d{4}$`, g.Next())
}

func TestNext_PrefijoVacioUsaDefault(t *testing.T) {
	g := numbering.New("")
	assert.Regexp(t, `^BILL-`, g.Next())
}

func TestNext_SinColisionesEnRafaga(t *testing.T) {
	// 1000 números generados de corrido deben ser todos distintos aunque
	// caigan en el mismo milisegundo.
	g := numbering.New("BILL")
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		num := g.Next()
		_, dup := seen[num]
		require.False(t, dup, "número repetido: %s", num)
		seen[num] = struct{}{}
	}
}

func TestNext_ConcurrenciaSegura(t *testing.T) {
	g := numbering.New("BILL")

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				num := g.Next()
				mu.Lock()
				seen[num] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker, "todos los números deben ser distintos")
}
