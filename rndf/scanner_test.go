package rndf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerSkipsBlanksAndCountsLines(t *testing.T) {
	sc := newScanner([]byte("first\n\n   \nfourth\n"))

	ln, ok := sc.next()
	require.True(t, ok)
	assert.Equal(t, "first", ln.text)
	assert.Equal(t, 1, ln.num)

	ln, ok = sc.next()
	require.True(t, ok)
	assert.Equal(t, "fourth", ln.text)
	assert.Equal(t, 4, ln.num)

	_, ok = sc.next()
	assert.False(t, ok)
}

func TestScannerStripsComments(t *testing.T) {
	sc := newScanner([]byte("segment 1 /* main road */\n/* whole line comment */\nnum_lanes 2\n"))

	ln, ok := sc.next()
	require.True(t, ok)
	assert.Equal(t, "segment 1", ln.text)

	ln, ok = sc.next()
	require.True(t, ok)
	assert.Equal(t, "num_lanes 2", ln.text)
	assert.Equal(t, 3, ln.num)
}

func TestScannerCollapsesWhitespace(t *testing.T) {
	sc := newScanner([]byte("  lane \t 1.1  \r\n"))

	ln, ok := sc.next()
	require.True(t, ok)
	assert.Equal(t, "lane 1.1", ln.text)
	assert.Equal(t, []string{"lane", "1.1"}, ln.tokens())
}

func TestScannerUnread(t *testing.T) {
	sc := newScanner([]byte("one\ntwo\n"))

	ln, ok := sc.next()
	require.True(t, ok)
	sc.unread(ln)

	again, ok := sc.next()
	require.True(t, ok)
	assert.Equal(t, ln, again)

	ln, ok = sc.next()
	require.True(t, ok)
	assert.Equal(t, "two", ln.text)
}

func TestTrimLineEmbeddedComment(t *testing.T) {
	assert.Equal(t, "checkpoint 1.1.2 1", trimLine("checkpoint /* cp one */ 1.1.2 1"))
	assert.Equal(t, "", trimLine("/* nothing else */"))
}
