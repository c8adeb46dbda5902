// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/curio-house/curio/stackedmap"
	"github.com/stretchr/testify/assert"
)

func TestStackedMap(t *testing.T) {
	src := map[string]string{"base": "in-src"}
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) {
		v, ok := src[key.(string)]
		return v, ok
	})

	v, ok := sm.Get("base")
	assert.True(t, ok)
	assert.Equal(t, "in-src", v)

	_, ok = sm.Get("missing")
	assert.False(t, ok)

	sm.Push()
	sm.Put("k", "v1")
	v, ok = sm.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	sm.Push()
	sm.Put("k", "v2")
	v, _ = sm.Get("k")
	assert.Equal(t, "v2", v)

	sm.Pop()
	v, _ = sm.Get("k")
	assert.Equal(t, "v1", v)
	assert.Equal(t, 2, sm.Depth())

	sm.Pop()
	_, ok = sm.Get("k")
	assert.False(t, ok)
}

func TestStackedMapPopTo(t *testing.T) {
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) { return nil, false })

	checkpoint := sm.Push()
	sm.Put("a", 1)
	sm.Push()
	sm.Put("a", 2)
	sm.Push()
	sm.Put("a", 3)

	sm.PopTo(checkpoint)
	_, ok := sm.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, sm.Depth())
}

func TestJournal(t *testing.T) {
	sm := stackedmap.New(func(key interface{}) (interface{}, bool) { return nil, false })

	sm.Push()
	sm.Put("a", 1)
	sm.Push()
	sm.Put("b", 2)
	sm.Put("a", 3)

	var keys []string
	var values []int
	sm.Journal(func(k, v interface{}) bool {
		keys = append(keys, k.(string))
		values = append(values, v.(int))
		return true
	})
	assert.Equal(t, []string{"a", "b", "a"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)

	// early stop
	n := 0
	sm.Journal(func(k, v interface{}) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}
