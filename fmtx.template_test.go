package fmtx

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Parse_Valid(t *testing.T) {
	e := New()

	tmpl, err := e.Parse("hello {0:>8}, {1}", 2)
	require.NoError(t, err)
	assert.Equal(t, "hello {0:>8}, {1}", tmpl.Source())
	assert.Equal(t, 2, tmpl.NArgs())
	assert.Equal(t, "hello       hi, there", tmpl.Render(Str("hi"), Str("there")))
}

func TestEngine_Parse_RejectsDefects(t *testing.T) {
	e := New()

	tests := []struct {
		name       string
		template   string
		nargs      int
		wantOffset int
	}{
		{name: "malformed spec", template: "a {0:Z} b", nargs: 1, wantOffset: 2},
		{name: "stray brace", template: "a } b", nargs: 0, wantOffset: 2},
		{name: "missing argument", template: "{0} {1}", nargs: 1, wantOffset: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Parse(tt.template, tt.nargs)
			require.Error(t, err)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
			offset, ok := customErr.GetMetadata(MetaKeyOffset)
			assert.True(t, ok)
			assert.Equal(t, strconv.Itoa(tt.wantOffset), offset)
		})
	}
}

func TestEngine_MustParse_PanicsOnDefect(t *testing.T) {
	e := New()
	assert.Panics(t, func() {
		e.MustParse("{0:Z}", 1)
	})
	assert.NotPanics(t, func() {
		e.MustParse("{0}", 1)
	})
}

func TestTemplate_RenderKeepsNeverFailContract(t *testing.T) {
	e := New(WithMarkers("<", ">"))
	tmpl, err := e.Parse("{0} {1}", 2)
	require.NoError(t, err)

	// One argument short at render time: inline marker, no error.
	assert.Equal(t, "1 <[missing]>", tmpl.Render(Int(1)))
}

func TestCheck(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		assert.Nil(t, Check("hello {} {{x}}", 1))
	})

	t.Run("reports every defect", func(t *testing.T) {
		issues := Check("} {0:Z} {5}", 1)
		require.Len(t, issues, 3)
		assert.Equal(t, ErrMsgStrayBrace, issues[0].Reason)
		assert.Equal(t, ErrMsgMalformedSpec, issues[1].Reason)
		assert.Equal(t, ErrMsgMissingArg, issues[2].Reason)
	})

	t.Run("issue string names the offset", func(t *testing.T) {
		issues := Check("}", 0)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].String(), "offset 0")
	})
}
