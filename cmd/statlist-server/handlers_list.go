// handlers_list.go implements the L.* command family, mapping RESP commands
// onto the statlist.List surface one to one.
//
// Conventions, mirrored across the family:
//
//   - Commands that can answer "the list is empty" (L.FRONT, L.MIN,
//     L.MEDIAN, L.SAMPLE, ...) reply with a nil bulk string in that case.
//   - Boolean outcomes (L.CONTAINS, L.DELETE, L.UPDATE, L.NEXTPERM) reply
//     with :1 or :0.
//   - Only commands that add elements (pushes, L.MERGE, L.SPLIT) create a
//     list on first touch. Everything else goes through Store.View, so a
//     query or a pop against an absent name never leaves an empty list
//     behind.
//
// All integer arguments are int64; anything unparsable is rejected before
// the store is touched, so a bad argument never half-applies a command.

package main

import (
	"io"
	"math"
	"strconv"
	"strings"

	"statlist.lopezb.com/internal/statlist"
)

// parseValue parses one int64 command argument.
func parseValue(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

// handleLPushBack handles L.PUSHBACK key value [value ...].
// Appends each value in order and replies with the resulting size.
func (app *application) handleLPushBack(w io.Writer, args []string) {
	app.pushGeneric(w, args, "L.PUSHBACK", (*statlist.List).PushBack)
}

// handleLPushFront handles L.PUSHFRONT key value [value ...].
// Each value becomes the new head, so arguments end up in reverse order.
func (app *application) handleLPushFront(w io.Writer, args []string) {
	app.pushGeneric(w, args, "L.PUSHFRONT", (*statlist.List).PushFront)
}

func (app *application) pushGeneric(w io.Writer, args []string, name string, push func(*statlist.List, int64)) {
	if len(args) < 2 {
		app.wrongNumberOfArgsResponse(w, name)
		return
	}
	values := make([]int64, 0, len(args)-1)
	for _, raw := range args[1:] {
		v, ok := parseValue(raw)
		if !ok {
			app.notAnIntegerResponse(w)
			return
		}
		values = append(values, v)
	}

	var size int
	app.store.With(args[0], func(l *statlist.List) {
		for _, v := range values {
			push(l, v)
		}
		size = l.Len()
	})
	_ = app.writeIntegerResponse(w, int64(size))
}

// handleLPopBack handles L.POPBACK key. Replies with the removed value, or
// nil when the list is empty or absent.
func (app *application) handleLPopBack(w io.Writer, args []string) {
	app.popGeneric(w, args, "L.POPBACK", (*statlist.List).PopBack)
}

// handleLPopFront handles L.POPFRONT key.
func (app *application) handleLPopFront(w io.Writer, args []string) {
	app.popGeneric(w, args, "L.POPFRONT", (*statlist.List).PopFront)
}

func (app *application) popGeneric(w io.Writer, args []string, name string, pop func(*statlist.List) (int64, bool)) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, name)
		return
	}
	var (
		v  int64
		ok bool
	)
	app.store.View(args[0], func(l *statlist.List) {
		v, ok = pop(l)
	})
	if !ok {
		_ = app.writeNilResponse(w)
		return
	}
	_ = app.writeIntegerResponse(w, v)
}

// handleLFront handles L.FRONT key.
func (app *application) handleLFront(w io.Writer, args []string) {
	app.peekGeneric(w, args, "L.FRONT", (*statlist.List).Front)
}

// handleLBack handles L.BACK key.
func (app *application) handleLBack(w io.Writer, args []string) {
	app.peekGeneric(w, args, "L.BACK", (*statlist.List).Back)
}

// handleLMin handles L.MIN key.
func (app *application) handleLMin(w io.Writer, args []string) {
	app.peekGeneric(w, args, "L.MIN", (*statlist.List).Min)
}

// handleLMax handles L.MAX key.
func (app *application) handleLMax(w io.Writer, args []string) {
	app.peekGeneric(w, args, "L.MAX", (*statlist.List).Max)
}

// handleLSample handles L.SAMPLE key: a uniformly random current value.
func (app *application) handleLSample(w io.Writer, args []string) {
	app.peekGeneric(w, args, "L.SAMPLE", (*statlist.List).Sample)
}

func (app *application) peekGeneric(w io.Writer, args []string, name string, peek func(*statlist.List) (int64, bool)) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, name)
		return
	}
	var (
		v  int64
		ok bool
	)
	app.store.View(args[0], func(l *statlist.List) {
		v, ok = peek(l)
	})
	if !ok {
		_ = app.writeNilResponse(w)
		return
	}
	_ = app.writeIntegerResponse(w, v)
}

// handleLSize handles L.SIZE key. Absent lists have size 0.
func (app *application) handleLSize(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "L.SIZE")
		return
	}
	var size int
	app.store.View(args[0], func(l *statlist.List) {
		size = l.Len()
	})
	_ = app.writeIntegerResponse(w, int64(size))
}

// handleLContains handles L.CONTAINS key value.
func (app *application) handleLContains(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.CONTAINS")
		return
	}
	v, ok := parseValue(args[1])
	if !ok {
		app.notAnIntegerResponse(w)
		return
	}
	found := false
	app.store.View(args[0], func(l *statlist.List) {
		found = l.Contains(v)
	})
	_ = app.writeIntegerResponse(w, boolToInt(found))
}

// handleLFreq handles L.FREQ key value: the occurrence count of value.
func (app *application) handleLFreq(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.FREQ")
		return
	}
	v, ok := parseValue(args[1])
	if !ok {
		app.notAnIntegerResponse(w)
		return
	}
	count := 0
	app.store.View(args[0], func(l *statlist.List) {
		count = l.FrequencyOf(v)
	})
	_ = app.writeIntegerResponse(w, int64(count))
}

// handleLMedian handles L.MEDIAN key. The median of an even-sized list can be
// fractional, so the reply is a bulk string float; empty lists reply nil.
func (app *application) handleLMedian(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "L.MEDIAN")
		return
	}
	median := math.NaN()
	app.store.View(args[0], func(l *statlist.List) {
		median = l.Median()
	})
	if math.IsNaN(median) {
		_ = app.writeNilResponse(w)
		return
	}
	_ = app.writeFloatResponse(w, median)
}

// handleLMode handles L.MODE key. Replies with [value, count], or nil for an
// empty or absent list.
func (app *application) handleLMode(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "L.MODE")
		return
	}
	var (
		mode  int64
		count int
		ok    bool
	)
	app.store.View(args[0], func(l *statlist.List) {
		mode, count, ok = l.Mode()
	})
	if !ok {
		_ = app.writeNilResponse(w)
		return
	}
	_ = app.writeIntegerArrayResponse(w, []int64{mode, int64(count)})
}

// handleLDelete handles L.DELETE key value: removes one occurrence.
func (app *application) handleLDelete(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.DELETE")
		return
	}
	v, ok := parseValue(args[1])
	if !ok {
		app.notAnIntegerResponse(w)
		return
	}
	deleted := false
	app.store.View(args[0], func(l *statlist.List) {
		deleted = l.DeleteValue(v)
	})
	_ = app.writeIntegerResponse(w, boolToInt(deleted))
}

// handleLUpdate handles L.UPDATE key old new: rewrites one occurrence.
func (app *application) handleLUpdate(w io.Writer, args []string) {
	if len(args) != 3 {
		app.wrongNumberOfArgsResponse(w, "L.UPDATE")
		return
	}
	oldV, ok1 := parseValue(args[1])
	newV, ok2 := parseValue(args[2])
	if !ok1 || !ok2 {
		app.notAnIntegerResponse(w)
		return
	}
	updated := false
	app.store.View(args[0], func(l *statlist.List) {
		updated = l.UpdateValue(oldV, newV)
	})
	_ = app.writeIntegerResponse(w, boolToInt(updated))
}

// handleLKth handles L.KTH key index (0-based). Out of range replies nil.
func (app *application) handleLKth(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.KTH")
		return
	}
	k, ok := parseValue(args[1])
	if !ok {
		app.notAnIntegerResponse(w)
		return
	}
	var (
		v     int64
		found bool
	)
	app.store.View(args[0], func(l *statlist.List) {
		v, found = l.Kth(int(k))
	})
	if !found {
		_ = app.writeNilResponse(w)
		return
	}
	_ = app.writeIntegerResponse(w, v)
}

// handleLRange handles L.RANGE key: the full traversal in order.
func (app *application) handleLRange(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "L.RANGE")
		return
	}
	values := []int64{}
	app.store.View(args[0], func(l *statlist.List) {
		for v := range l.Values() {
			values = append(values, v)
		}
	})
	_ = app.writeIntegerArrayResponse(w, values)
}

// handleLUnique handles L.UNIQUE key: distinct values, order unspecified.
func (app *application) handleLUnique(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "L.UNIQUE")
		return
	}
	values := []int64{}
	app.store.View(args[0], func(l *statlist.List) {
		values = l.UniqueValues()
	})
	_ = app.writeIntegerArrayResponse(w, values)
}

// handleLReverse handles L.REVERSE key.
func (app *application) handleLReverse(w io.Writer, args []string) {
	app.mutateGeneric(w, args, "L.REVERSE", func(l *statlist.List) { l.Reverse() })
}

// handleLDedup handles L.DEDUP key: keeps the first occurrence of each value.
func (app *application) handleLDedup(w io.Writer, args []string) {
	app.mutateGeneric(w, args, "L.DEDUP", func(l *statlist.List) { l.RemoveDuplicates() })
}

// handleLClear handles L.CLEAR key. The list stays registered, just empty.
func (app *application) handleLClear(w io.Writer, args []string) {
	app.mutateGeneric(w, args, "L.CLEAR", func(l *statlist.List) { l.Clear() })
}

func (app *application) mutateGeneric(w io.Writer, args []string, name string, mutate func(*statlist.List)) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, name)
		return
	}
	app.store.View(args[0], mutate)
	_ = app.writeSimpleStringResponse(w, "OK")
}

// handleLRotate handles L.ROTATE key k: rotate right by k (mod size).
func (app *application) handleLRotate(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.ROTATE")
		return
	}
	k, ok := parseValue(args[1])
	if !ok {
		app.notAnIntegerResponse(w)
		return
	}
	app.store.View(args[0], func(l *statlist.List) {
		l.Rotate(int(k))
	})
	_ = app.writeSimpleStringResponse(w, "OK")
}

// handleLSort handles L.SORT key ASC|DESC.
func (app *application) handleLSort(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.SORT")
		return
	}
	var sortFn func(*statlist.List)
	switch strings.ToUpper(args[1]) {
	case "ASC":
		sortFn = (*statlist.List).SortAscending
	case "DESC":
		sortFn = (*statlist.List).SortDescending
	default:
		_ = app.writeErrorResponse(w, "ERR syntax error: expected ASC or DESC")
		return
	}
	app.store.View(args[0], sortFn)
	_ = app.writeSimpleStringResponse(w, "OK")
}

// handleLNextPerm handles L.NEXTPERM key: steps to the next lexicographic
// arrangement, replying :0 when the sequence wrapped to the first one.
func (app *application) handleLNextPerm(w io.Writer, args []string) {
	app.permGeneric(w, args, "L.NEXTPERM", (*statlist.List).NextPermutation)
}

// handleLPrevPerm handles L.PREVPERM key.
func (app *application) handleLPrevPerm(w io.Writer, args []string) {
	app.permGeneric(w, args, "L.PREVPERM", (*statlist.List).PreviousPermutation)
}

func (app *application) permGeneric(w io.Writer, args []string, name string, step func(*statlist.List) bool) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, name)
		return
	}
	stepped := false
	app.store.View(args[0], func(l *statlist.List) {
		stepped = step(l)
	})
	_ = app.writeIntegerResponse(w, boolToInt(stepped))
}

// handleLMerge handles L.MERGE dst src: appends src's elements to dst and
// leaves src empty. Replies with dst's resulting size.
func (app *application) handleLMerge(w io.Writer, args []string) {
	if len(args) != 2 {
		app.wrongNumberOfArgsResponse(w, "L.MERGE")
		return
	}
	dst, src := args[0], args[1]
	if dst == src {
		_ = app.writeErrorResponse(w, "ERR source and destination must differ")
		return
	}
	var size int
	app.store.WithPair(dst, src, func(d, s *statlist.List) {
		d.Merge(s)
		size = d.Len()
	})
	_ = app.writeIntegerResponse(w, int64(size))
}

// handleLSplit handles L.SPLIT src dst k: moves src's elements from position
// k onward into dst (replacing dst's previous content). Replies with dst's
// resulting size.
func (app *application) handleLSplit(w io.Writer, args []string) {
	if len(args) != 3 {
		app.wrongNumberOfArgsResponse(w, "L.SPLIT")
		return
	}
	src, dst := args[0], args[1]
	if src == dst {
		_ = app.writeErrorResponse(w, "ERR source and destination must differ")
		return
	}
	k, ok := parseValue(args[2])
	if !ok || k < 0 {
		app.notAnIntegerResponse(w)
		return
	}
	var size int
	app.store.WithPair(src, dst, func(s, d *statlist.List) {
		right := s.Split(int(k))
		d.Clear()
		d.Merge(right)
		size = d.Len()
	})
	_ = app.writeIntegerResponse(w, int64(size))
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
