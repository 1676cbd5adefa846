// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"errors"
	"testing"
)

func TestStringEmpty(t *testing.T) {
	t.Parallel()

	var tr Trie
	if got := tr.String(); got != "" {
		t.Errorf("String of empty trie: %q", got)
	}

	text, err := tr.MarshalText()
	if err != nil || len(text) != 0 {
		t.Errorf("MarshalText of empty trie: %q, %v", text, err)
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{
			name: "flat",
			keys: []string{"dog", "cat"},
			want: `▼
├─ "cat"
└─ "dog"
`,
		},
		{
			name: "nested",
			keys: []string{"cats", "dog", "car", "cat", "ca"},
			want: `▼
├─ "ca"
│  ├─ "car"
│  └─ "cat"
│     └─ "cats"
└─ "dog"
`,
		},
		{
			name: "empty key",
			keys: []string{"b", "", "a", "ab"},
			want: `▼
└─ ""
   ├─ "a"
   │  └─ "ab"
   └─ "b"
`,
		},
		{
			name: "binary",
			keys: []string{"\xff", "\x00", "\x00\x01"},
			want: `▼
├─ "\x00"
│  └─ "\x00\x01"
└─ "\xff"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := New()
			mustInsert(t, tr, tt.keys...)

			if got := tr.String(); got != tt.want {
				t.Errorf("String:\n%s\nwant:\n%s", got, tt.want)
			}

			text, err := tr.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if string(text) != tt.want {
				t.Errorf("MarshalText:\n%s\nwant:\n%s", text, tt.want)
			}
		})
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintError(t *testing.T) {
	t.Parallel()

	tr := New()
	mustInsert(t, tr, "a")

	if err := tr.Fprint(failWriter{}); !errors.Is(err, errWrite) {
		t.Errorf("Fprint: got %v, want %v", err, errWrite)
	}

	defer func() {
		if recover() == nil {
			t.Error("Fprint to nil writer must panic")
		}
	}()

	_ = tr.Fprint(nil)
}
