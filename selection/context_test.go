package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssengine/cssom"
	"cssengine/errcode"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/selection"
)

func TestInsertSheetRejectsNilArgs(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	err := ctx.InsertSheet(nil, 0, cssom.OriginAuthor, mediatype.Screen)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.BadParm))
}

func TestInsertSheetRejectsInlineStyle(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	sheet := cssom.New()
	sheet.InlineStyle = true
	err := ctx.InsertSheet(sheet, 0, cssom.OriginAuthor, mediatype.Screen)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.Invalid))
}

func TestInsertSheetRejectsOutOfRangeIndex(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	sheet := cssom.New()
	err := ctx.InsertSheet(sheet, 5, cssom.OriginAuthor, mediatype.Screen)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.Invalid))
}

func TestInsertAppendAndCountSheets(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	ua := cssom.New()
	user := cssom.New()
	author := cssom.New()

	require.NoError(t, ctx.AppendSheet(ua, cssom.OriginUA, mediatype.All))
	require.NoError(t, ctx.AppendSheet(author, cssom.OriginAuthor, mediatype.Screen))
	require.NoError(t, ctx.InsertSheet(user, 1, cssom.OriginUser, mediatype.All))
	assert.Equal(t, 3, ctx.CountSheets())

	got0, origin0, _, err := ctx.GetSheet(0)
	require.NoError(t, err)
	assert.Same(t, ua, got0)
	assert.Equal(t, cssom.OriginUA, origin0)

	got1, origin1, _, err := ctx.GetSheet(1)
	require.NoError(t, err)
	assert.Same(t, user, got1)
	assert.Equal(t, cssom.OriginUser, origin1)

	got2, origin2, _, err := ctx.GetSheet(2)
	require.NoError(t, err)
	assert.Same(t, author, got2)
	assert.Equal(t, cssom.OriginAuthor, origin2)
}

func TestRemoveSheetShiftsRemainder(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	first := cssom.New()
	second := cssom.New()
	require.NoError(t, ctx.AppendSheet(first, cssom.OriginAuthor, mediatype.All))
	require.NoError(t, ctx.AppendSheet(second, cssom.OriginAuthor, mediatype.All))

	require.NoError(t, ctx.RemoveSheet(0))
	require.Equal(t, 1, ctx.CountSheets())
	got, _, _, err := ctx.GetSheet(0)
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRemoveSheetOutOfRange(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	err := ctx.RemoveSheet(0)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.Invalid))
}

func TestDisableSheetKeepsSheetRegistered(t *testing.T) {
	ctx := selection.New(istr.NewPool())
	sheet := cssom.New()
	require.NoError(t, ctx.AppendSheet(sheet, cssom.OriginAuthor, mediatype.All))
	require.NoError(t, ctx.DisableSheet(0, true))
	_, _, _, err := ctx.GetSheet(0)
	require.NoError(t, err) // disabling doesn't remove it
	assert.Equal(t, 1, ctx.CountSheets())
}
