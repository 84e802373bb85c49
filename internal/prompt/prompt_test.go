package prompt

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	replies   []string
	err       error
	prompts   []string
	passwords int
}

func (s *scriptedReader) next(p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.replies) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r, nil
}

func (s *scriptedReader) Prompt(p string) (string, error) { return s.next(p) }

func (s *scriptedReader) PasswordPrompt(p string) (string, error) {
	s.passwords++
	return s.next(p)
}

func newTestTerminal(masked bool, replies ...string) (*Terminal, *scriptedReader, *bytes.Buffer) {
	r := &scriptedReader{replies: replies}
	var out bytes.Buffer
	return &Terminal{in: r, out: &out, masked: masked}, r, &out
}

func TestEcho(t *testing.T) {
	questions := []Question{
		{Name: "host", Type: Input, Default: "localhost"},
		{Name: "region", Type: List, Choices: []string{"a", "b"}},
		{Name: "ok", Type: Confirm},
		{Name: "no", Type: Confirm, Default: false},
		{Name: "user", Type: Input},
	}

	got, err := Echo{Sentinel: "x"}.Prompt(context.Background(), questions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host":   "localhost",
		"region": "a",
		"ok":     true,
		"no":     false,
		"user":   "x",
	}, got)

	got, err = Echo{}.Prompt(context.Background(), questions[:4])
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestEcho_NoDefault(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"input", Question{Name: "user", Type: Input}},
		{"password", Question{Name: "password", Type: Password}},
		{"list without choices", Question{Name: "region", Type: List}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Echo{}.Prompt(context.Background(), []Question{tt.q})
			assert.ErrorIs(t, err, ErrNoDefault)
			assert.ErrorContains(t, err, tt.q.Name)
			assert.Nil(t, got)
		})
	}
}

func TestEcho_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Echo{}.Prompt(ctx, []Question{{Name: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{"input no default", Question{Message: "Name", Type: Input}, "Name: "},
		{"input default", Question{Message: "Port", Type: Input, Default: 8080}, "Port [8080]: "},
		{"password hides default", Question{Message: "Password", Type: Password, Default: "hunter2"}, "Password: "},
		{"list default", Question{Message: "Region", Type: List, Default: "eu"}, "Region [eu]: "},
		{"confirm default yes", Question{Message: "Go?", Type: Confirm, Default: true}, "Go? [Y/n]: "},
		{"confirm no default", Question{Message: "Go?", Type: Confirm}, "Go? [Y/n]: "},
		{"confirm default no", Question{Message: "Go?", Type: Confirm, Default: false}, "Go? [y/N]: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, label(tt.q))
		})
	}
}

func TestResolve(t *testing.T) {
	list := Question{Type: List, Choices: []string{"us", "eu"}, Default: "us"}
	tests := []struct {
		name   string
		q      Question
		reply  string
		want   any
		wantOK bool
	}{
		{"input reply", Question{Type: Input}, " bob ", "bob", true},
		{"input empty uses default", Question{Type: Input, Default: "x"}, "", "x", true},
		{"input empty required", Question{Type: Input}, "  ", nil, false},
		{"password kept verbatim", Question{Type: Password}, " s3cret ", " s3cret ", true},
		{"list by index", list, "2", "eu", true},
		{"list by value", list, "eu", "eu", true},
		{"list empty default", list, "", "us", true},
		{"list out of range", list, "3", nil, false},
		{"list unknown", list, "ap", nil, false},
		{"confirm yes", Question{Type: Confirm}, "Y", true, true},
		{"confirm no", Question{Type: Confirm}, "no", false, true},
		{"confirm empty no default", Question{Type: Confirm}, "", true, true},
		{"confirm empty default false", Question{Type: Confirm, Default: false}, "", false, true},
		{"confirm garbage", Question{Type: Confirm}, "maybe", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolve(tt.q, tt.reply)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTerminal_Prompt(t *testing.T) {
	term, r, out := newTestTerminal(true, "", "alice", "hunter2", "9", "2", "n")
	questions := []Question{
		{Name: "user", Message: "Username", Type: Input},
		{Name: "password", Message: "Password", Type: Password},
		{Name: "region", Message: "Region", Type: List, Choices: []string{"us", "eu"}, Default: "us"},
		{Name: "save", Message: "Save?", Type: Confirm, Default: true},
	}

	got, err := term.Prompt(context.Background(), questions)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"user":     "alice",
		"password": "hunter2",
		"region":   "eu",
		"save":     false,
	}, got)

	assert.Equal(t, 1, r.passwords)
	assert.Contains(t, out.String(), "A value is required.")
	assert.Contains(t, out.String(), "  1) us\n  2) eu\n")
	assert.Contains(t, out.String(), "Please enter a number between 1 and 2.")
}

func TestTerminal_PasswordUnmaskedWhenNotTerminal(t *testing.T) {
	term, r, _ := newTestTerminal(false, "pw")
	got, err := term.Prompt(context.Background(), []Question{{Name: "password", Message: "Password", Type: Password}})
	require.NoError(t, err)
	assert.Equal(t, "pw", got["password"])
	assert.Zero(t, r.passwords)
}

func TestTerminal_Aborted(t *testing.T) {
	term, r, _ := newTestTerminal(true)
	r.err = liner.ErrPromptAborted
	_, err := term.Prompt(context.Background(), []Question{{Name: "user", Message: "Username"}})
	assert.ErrorIs(t, err, ErrAborted)

	term, _, _ = newTestTerminal(true)
	_, err = term.Prompt(context.Background(), []Question{{Name: "user", Message: "Username"}})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestTerminal_CloseWithoutLiner(t *testing.T) {
	term, _, _ := newTestTerminal(true)
	assert.NoError(t, term.Close())
}
