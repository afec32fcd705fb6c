// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"sync"
	"testing"

	"go.astrophena.name/includedocs/internal/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[string]
		calls int
		wg    sync.WaitGroup
		got   = make([]string, 10)
	)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = l.Get(func() string {
				calls++
				return "doc"
			})
		}()
	}
	wg.Wait()
	testutil.AssertEqual(t, calls, 1)
	for _, v := range got {
		testutil.AssertEqual(t, v, "doc")
	}
}

func TestLazyErr(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var l Lazy[int]
	for range 2 {
		v, err := l.GetErr(func() (int, error) { return 1, errBoom })
		testutil.AssertEqual(t, v, 1)
		if !errors.Is(err, errBoom) {
			t.Fatalf("want %v, got %v", errBoom, err)
		}
	}
}
