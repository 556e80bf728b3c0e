// Package words holds the ordered list of words a session has to place.
package words

import "unicode/utf8"

// DefaultCapacity is the maximum number of words kept from a source.
const DefaultCapacity = 30

// Entry is a present word together with its slot index.
type Entry struct {
	Index int
	Word  string
}

// slot is one position of the list. Removal by index leaves the slot in
// place with present cleared.
type slot struct {
	word    string
	present bool
}

// List is an ordered word list. Words can be removed by value, which
// compacts the list, or by index, which leaves a tombstone so other
// indices stay stable.
type List struct {
	slots   []slot
	dropped int
}

// NewList creates a list holding words in order.
func NewList(words ...string) *List {
	l := &List{slots: make([]slot, 0, len(words))}
	for _, w := range words {
		l.slots = append(l.slots, slot{word: w, present: true})
	}
	return l
}

// Len returns the number of slots, tombstones included.
func (l *List) Len() int {
	return len(l.slots)
}

// Remaining returns the number of words still present.
func (l *List) Remaining() int {
	n := 0
	for _, s := range l.slots {
		if s.present {
			n++
		}
	}
	return n
}

// At returns the word at index, or false if the index is out of range or
// the slot was removed.
func (l *List) At(index int) (string, bool) {
	if index < 0 || index >= len(l.slots) || !l.slots[index].present {
		return "", false
	}
	return l.slots[index].word, true
}

// Entries returns the present words in order with their indices.
func (l *List) Entries() []Entry {
	entries := make([]Entry, 0, len(l.slots))
	for i, s := range l.slots {
		if s.present {
			entries = append(entries, Entry{Index: i, Word: s.word})
		}
	}
	return entries
}

// ShortestLength returns the length in letters of the shortest present
// word, or 0 when none are left.
func (l *List) ShortestLength() int {
	shortest := 0
	for _, s := range l.slots {
		if !s.present {
			continue
		}
		n := utf8.RuneCountInString(s.word)
		if shortest == 0 || n < shortest {
			shortest = n
		}
	}
	return shortest
}

// LongestLength returns the length in letters of the longest present word,
// or 0 when none are left.
func (l *List) LongestLength() int {
	longest := 0
	for _, s := range l.slots {
		if s.present {
			longest = max(longest, utf8.RuneCountInString(s.word))
		}
	}
	return longest
}

// Remove deletes the first present occurrence of word and shifts the
// following entries down by one.
func (l *List) Remove(word string) bool {
	for i, s := range l.slots {
		if s.present && s.word == word {
			l.slots = append(l.slots[:i], l.slots[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt marks the word at index as gone without moving the others.
// Out of range or already removed indices are ignored.
func (l *List) RemoveAt(index int) bool {
	if index < 0 || index >= len(l.slots) || !l.slots[index].present {
		return false
	}
	l.slots[index].present = false
	return true
}

// Truncated reports whether the source held more words than the capacity.
func (l *List) Truncated() bool {
	return l.dropped > 0
}

// Dropped returns how many words were left out because of the capacity.
func (l *List) Dropped() int {
	return l.dropped
}
