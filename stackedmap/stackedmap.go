// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap

// StackedMap maintains maps in a stack.
// Each map inherits key/value of the map under it.
// Changes to the topmost map are independent, and can be reverted
// by popping the map off the stack.
type StackedMap struct {
	src          MapGetter
	mapStack     stack
	keyRevisions map[interface{}]*stack
}

type level struct {
	kvs     map[interface{}]interface{}
	journal []*journalEntry
}

func newLevel() *level {
	return &level{kvs: make(map[interface{}]interface{})}
}

// journalEntry entry of journal.
type journalEntry struct {
	key   interface{}
	value interface{}
}

// MapGetter defines getter method of the source map.
type MapGetter func(key interface{}) (value interface{}, exist bool)

// New create an instance of StackedMap.
// src acts as the source of the map, and is read-only.
func New(src MapGetter) *StackedMap {
	return &StackedMap{
		src,
		stack{newLevel()},
		make(map[interface{}]*stack),
	}
}

// Depth returns the count of stacked maps.
func (sm *StackedMap) Depth() int {
	return len(sm.mapStack)
}

// Push pushes a new map on stack.
// It returns stack depth before pushing.
func (sm *StackedMap) Push() int {
	sm.mapStack.push(newLevel())
	return len(sm.mapStack) - 1
}

// Pop pops the topmost map off the stack.
// It will revert all Put operations on the popped map.
func (sm *StackedMap) Pop() {
	top := sm.mapStack.top().(*level)
	for key := range top.kvs {
		revs := sm.keyRevisions[key]
		revs.pop()
		if len(*revs) == 0 {
			delete(sm.keyRevisions, key)
		}
	}
	sm.mapStack.pop()
}

// PopTo pops maps until the stack depth reaches the given depth.
func (sm *StackedMap) PopTo(depth int) {
	for len(sm.mapStack) > depth {
		sm.Pop()
	}
}

// Get gets the value for the given key.
// The returned value is the most recent Put value, or the one from the
// source map if the key was never written on the stack.
func (sm *StackedMap) Get(key interface{}) (interface{}, bool) {
	if revs, ok := sm.keyRevisions[key]; ok {
		lvl := sm.mapStack[revs.top().(int)].(*level)
		if v, ok := lvl.kvs[key]; ok {
			return v, true
		}
	}
	return sm.src(key)
}

// Put sets the value for the given key.
// The value is written to the topmost map.
func (sm *StackedMap) Put(key, value interface{}) {
	topDepth := len(sm.mapStack) - 1
	top := sm.mapStack.top().(*level)
	top.kvs[key] = value
	top.journal = append(top.journal, &journalEntry{key: key, value: value})

	revs, ok := sm.keyRevisions[key]
	if !ok {
		revs = &stack{}
		sm.keyRevisions[key] = revs
	}
	if len(*revs) == 0 || revs.top().(int) != topDepth {
		revs.push(topDepth)
	}
}

// Journal traverses all putted kv pairs in the order they were putted.
// The traversal aborts when cb returns false.
func (sm *StackedMap) Journal(cb func(key, value interface{}) bool) {
	for _, lvl := range sm.mapStack {
		for _, entry := range lvl.(*level).journal {
			if !cb(entry.key, entry.value) {
				return
			}
		}
	}
}

// stack ordinary stack backed by a slice.
type stack []interface{}

func (s *stack) pop() {
	*s = (*s)[:len(*s)-1]
}

func (s *stack) push(v interface{}) {
	*s = append(*s, v)
}

func (s stack) top() interface{} {
	return s[len(s)-1]
}
