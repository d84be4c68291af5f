package menu

import (
	"fmt"
	"strings"
)

// Scope says which dates of a day block an item applies to. Common covers
// every date; any other value is the day of month it is pinned to.
type Scope int

const Common Scope = 0

func DateScope(day int) Scope { return Scope(day) }

func (s Scope) IsCommon() bool { return s == Common }

// orderedSet keeps the first-seen order of distinct strings.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]struct{})}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

// column accumulates one meal column of one day block.
type column struct {
	all    *orderedSet
	scopes map[Scope]*orderedSet
	order  []Scope
	cursor Scope
}

func newColumn() *column {
	return &column{
		all:    newOrderedSet(),
		scopes: make(map[Scope]*orderedSet),
		cursor: Common,
	}
}

func (c *column) scope(s Scope) *orderedSet {
	set, ok := c.scopes[s]
	if !ok {
		set = newOrderedSet()
		c.scopes[s] = set
		c.order = append(c.order, s)
	}
	return set
}

func (c *column) feed(cell Cell) {
	if cell.blank() {
		return
	}

	if cell.IsDate() {
		if day, ok := cell.DayOfMonth(); ok {
			c.scope(DateScope(day))
			c.cursor = DateScope(day)
		}
		return
	}

	item := strings.TrimSpace(cell.String())
	if item == "" {
		return
	}
	c.all.add(item)
	c.scope(c.cursor).add(item)
}

func (c *column) multiDate() bool {
	return len(c.order) > 1 || (len(c.order) == 1 && !c.order[0].IsCommon())
}

// finalize emits common items first, then date-pinned items as "[d] item"
// grouped by date in the order the dates appeared.
func (c *column) finalize() []string {
	if !c.multiDate() {
		return append([]string{}, c.all.items...)
	}

	out := []string{}
	if common, ok := c.scopes[Common]; ok {
		out = append(out, common.items...)
	}
	for _, s := range c.order {
		if s.IsCommon() {
			continue
		}
		for _, item := range c.scopes[s].items {
			out = append(out, fmt.Sprintf("[%d] %s", int(s), item))
		}
	}
	return out
}

// DayAccumulator collects the meal cells of a single day block. A fresh
// accumulator is created for every block.
type DayAccumulator struct {
	entry   DayEntry
	columns [len(Meals)]*column
}

// NewDayAccumulator starts a block for the given entry shell.
func NewDayAccumulator(entry DayEntry) *DayAccumulator {
	a := &DayAccumulator{entry: entry}
	for i := range a.columns {
		a.columns[i] = newColumn()
	}
	return a
}

// Feed resolves one cell of meal column m.
func (a *DayAccumulator) Feed(m Meal, cell Cell) {
	a.columns[m].feed(cell)
}

// Finalize builds the finished day entry.
func (a *DayAccumulator) Finalize() DayEntry {
	entry := a.entry
	for _, m := range Meals {
		entry.Meals.set(m, a.columns[m].finalize())
	}
	return entry
}
