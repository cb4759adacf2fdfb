package listkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func benchList(n int) *List[int] {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	return New[int](NewSliceStore(elems...))
}

func BenchmarkIndexOf(b *testing.B) {
	l := benchList(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.IndexOf(1023)
	}
}

func BenchmarkContains(b *testing.B) {
	l := benchList(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Contains(512)
	}
}

func BenchmarkValues(b *testing.B) {
	l := benchList(1024)
	b.ReportAllocs()
	var sum int
	for i := 0; i < b.N; i++ {
		for v := range l.Values() {
			sum += v
		}
	}
	_ = sum
}

func BenchmarkAppendRemove(b *testing.B) {
	l := New[int](NewSliceStore[int]())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Append(i)
		_ = l.RemoveAt(l.Len() - 1)
	}
	require.Equal(b, 0, l.Len())
}

func BenchmarkErasedAdd(b *testing.B) {
	l := New[int](NewSliceStore[int]())
	a := l.Untyped()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = a.Add(i)
	}
}

func BenchmarkSyncRoot(b *testing.B) {
	l := benchList(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.SyncRoot()
	}
}
