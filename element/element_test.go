// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package element_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-yomitan/element"
)

func TestNew_void(t *testing.T) {
	t.Parallel()

	e := element.NewText(element.TagBr, "ignored")
	if e.Content != nil {
		t.Fatalf("Content: want nil, got %#v", e.Content)
	}

	b, err := element.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if diff := cmp.Diff(`{"tag":"br"}`, string(b)); diff != "" {
		t.Fatalf("Marshal (-want, +got):\n%s", diff)
	}
}

func TestElement_Clone(t *testing.T) {
	t.Parallel()

	orig := element.NewChildren(element.TagUl, []*element.Element{
		element.NewText(element.TagLi, "one", element.WithData(map[string]string{"k": "v"})),
	}, element.WithStyle(map[string]string{"fontWeight": "bold"}))

	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("Clone (-want, +got):\n%s", diff)
	}

	// Mutating the clone must not touch the original.
	c.Style["fontWeight"] = "normal"
	c.Content.(element.Children)[0].Data["k"] = "changed"
	c.Append(element.NewText(element.TagLi, "two"))

	if got := orig.Style["fontWeight"]; got != "bold" {
		t.Errorf("orig style: want %q, got %q", "bold", got)
	}
	if got := orig.Content.(element.Children)[0].Data["k"]; got != "v" {
		t.Errorf("orig data: want %q, got %q", "v", got)
	}
	if got := len(orig.Content.(element.Children)); got != 1 {
		t.Errorf("orig children: want 1, got %d", got)
	}
}

func TestElement_Append(t *testing.T) {
	t.Parallel()

	e := element.NewText(element.TagDiv, "replaced")
	e.Append(element.NewText(element.TagSpan, "a"), element.New(element.TagBr, nil))

	want := &element.Element{
		Tag: element.TagDiv,
		Content: element.Children{
			{Tag: element.TagSpan, Content: element.Text("a")},
			{Tag: element.TagBr},
		},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Fatalf("Append (-want, +got):\n%s", diff)
	}
}

func TestElement_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elem     *element.Element
		expected string
	}{
		{
			name:     "text",
			elem:     element.NewText(element.TagSpan, "<b>&</b>"),
			expected: `{"tag":"span","content":"<b>&</b>"}`,
		},
		{
			name:     "empty text",
			elem:     element.NewText(element.TagSpan, ""),
			expected: `{"tag":"span","content":""}`,
		},
		{
			name:     "nil children",
			elem:     &element.Element{Tag: element.TagUl, Content: element.Children(nil)},
			expected: `{"tag":"ul","content":[]}`,
		},
		{
			name: "attributes",
			elem: element.NewChildren(element.TagUl, []*element.Element{
				element.NewChildren(element.TagLi, []*element.Element{
					element.Link("View", "https://jisho.org/word/食べる"),
				}),
			}, element.WithStyle(map[string]string{"listStyleType": `"⧉"`}),
				element.WithData(map[string]string{"wikipedia": "continue-reading"})),
			expected: `{"tag":"ul","content":[{"tag":"li","content":[{"tag":"a","content":"View","href":"https://jisho.org/word/食べる"}]}],"style":{"listStyleType":"\"⧉\""},"data":{"wikipedia":"continue-reading"}}`,
		},
		{
			name:     "empty attributes omitted",
			elem:     element.NewText(element.TagSpan, "x", element.WithStyle(map[string]string{}), element.WithData(nil)),
			expected: `{"tag":"span","content":"x"}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := element.Marshal(test.elem)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Fatalf("Marshal (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestElement_roundTrip(t *testing.T) {
	t.Parallel()

	trees := []*element.Element{
		element.New(element.TagBr, nil),
		element.NewText(element.TagSpan, "text"),
		element.NewChildren(element.TagTable, []*element.Element{
			element.NewChildren(element.TagTr, []*element.Element{
				element.NewText(element.TagTh, "head"),
				element.NewText(element.TagTd, "cell", element.WithStyle(map[string]string{"textAlign": "center"})),
			}),
		}),
		element.NewChildren(element.TagDiv, nil, element.WithData(map[string]string{"jmdict": "1358280"})),
	}
	trees = append(trees, element.LinkList("To eat", "https://jisho.org/word/食べる")...)

	for _, tree := range trees {
		if err := element.Validate(tree); err != nil {
			t.Fatalf("Validate: %v", err)
		}

		b, err := element.Marshal(tree)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}

		var got element.Element
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}

		if diff := cmp.Diff(tree, &got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip %s (-want, +got):\n%s", b, diff)
		}
	}
}

func TestElement_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected *element.Element
		err      error
	}{
		{
			name:     "null content",
			data:     `{"tag":"br","content":null}`,
			expected: &element.Element{Tag: element.TagBr},
		},
		{
			name: "nested",
			data: `{"tag":"ol","content":[{"tag":"li","content":"x"}]}`,
			expected: &element.Element{
				Tag: element.TagOl,
				Content: element.Children{
					{Tag: element.TagLi, Content: element.Text("x")},
				},
			},
		},
		{
			name: "number content",
			data: `{"tag":"span","content":5}`,
			err:  element.ErrInvalidContentType,
		},
		{
			name: "object content",
			data: `{"tag":"span","content":{"tag":"span"}}`,
			err:  element.ErrInvalidContentType,
		},
		{
			name: "nested invalid content",
			data: `{"tag":"ul","content":[{"tag":"li","content":true}]}`,
			err:  element.ErrInvalidContentType,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var got element.Element
			err := json.Unmarshal([]byte(test.data), &got)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Unmarshal: want %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(test.expected, &got); diff != "" {
				t.Fatalf("Unmarshal (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elems    []*element.Element
		expected string
	}{
		{
			name:     "link list",
			elems:    element.LinkList("To eat", "https://jisho.org"),
			expected: "To eat\nhttps://jisho.org",
		},
		{
			name: "ruby",
			elems: []*element.Element{
				element.NewChildren(element.TagRuby, []*element.Element{
					element.NewText(element.TagSpan, "食"),
					element.NewText(element.TagRp, "("),
					element.NewText(element.TagRt, "た"),
					element.NewText(element.TagRp, ")"),
				}),
				element.NewText(element.TagSpan, "べる"),
			},
			expected: "食(た)べる",
		},
		{
			name: "line break",
			elems: []*element.Element{
				element.NewText(element.TagSpan, "a"),
				element.New(element.TagBr, nil),
				element.NewText(element.TagSpan, "b"),
			},
			expected: "a\nb",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, element.PlainText(test.elems)); diff != "" {
				t.Fatalf("PlainText (-want, +got):\n%s", diff)
			}
		})
	}
}
