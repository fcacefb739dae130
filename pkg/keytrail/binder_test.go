package keytrail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDevices = []DeviceInfo{
	{ID: 2, Name: "Virtual core pointer", Use: UsePointer},
	{ID: 3, Name: "Virtual core keyboard", Use: UseKeyboard},
	{ID: 4, Name: "Virtual core XTEST pointer", Use: UseExtensionPointer},
	{ID: 5, Name: "Virtual core XTEST keyboard", Use: UseExtensionKeyboard},
	{ID: 6, Name: "Power Button", Use: UseExtensionKeyboard},
	{ID: 7, Name: "AT Translated Set 2 keyboard", Use: UseExtensionKeyboard},
	{ID: 8, Name: "Logitech USB Receiver", Use: UseExtensionKeyboard},
	{ID: 9, Name: "SynPS/2 Synaptics TouchPad", Use: UseExtensionPointer},
}

func TestBindKeyboardsAll(t *testing.T) {
	devs := &fakeDevices{infos: testDevices}

	handles, err := BindKeyboards(devs, BindOptions{Policy: BindAll}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Equal(t, []DeviceID{5, 6, 7, 8}, devs.opened)
	require.Len(t, handles, 4)
	assert.Equal(t, "AT Translated Set 2 keyboard", handles[2].Name)
}

func TestBindKeyboardsPhysical(t *testing.T) {
	devs := &fakeDevices{infos: testDevices}

	handles, err := BindKeyboards(devs, BindOptions{Policy: BindPhysical, Exclude: DefaultExclude}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Equal(t, []DeviceID{7, 8}, devs.opened)
	assert.Len(t, handles, 2)
}

func TestBindKeyboardsIgnoresExcludeUnderAll(t *testing.T) {
	devs := &fakeDevices{infos: testDevices}

	_, err := BindKeyboards(devs, BindOptions{Policy: BindAll, Exclude: DefaultExclude}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Equal(t, []DeviceID{5, 6, 7, 8}, devs.opened)
}

func TestBindKeyboardsNoKeyboard(t *testing.T) {
	devs := &fakeDevices{infos: []DeviceInfo{testDevices[0], testDevices[1], testDevices[7]}}

	_, err := BindKeyboards(devs, BindOptions{Policy: BindAll}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, ErrNoKeyboardFound)
	assert.Empty(t, devs.opened)
}

func TestBindKeyboardsOnlyVirtual(t *testing.T) {
	devs := &fakeDevices{infos: []DeviceInfo{testDevices[3], testDevices[4]}}

	_, err := BindKeyboards(devs, BindOptions{Policy: BindPhysical, Exclude: DefaultExclude}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, ErrNoKeyboardFound)
}

func TestBindKeyboardsPartialOpenFailure(t *testing.T) {
	devs := &fakeDevices{infos: testDevices, failing: map[DeviceID]bool{7: true}}

	handles, err := BindKeyboards(devs, BindOptions{Policy: BindAll}, zap.NewNop().Sugar())
	require.NoError(t, err)

	assert.Len(t, handles, 3)
	for _, h := range handles {
		assert.NotEqual(t, DeviceID(7), h.ID)
	}
}

func TestBindKeyboardsAllOpensFail(t *testing.T) {
	devs := &fakeDevices{
		infos:   testDevices,
		failing: map[DeviceID]bool{5: true, 6: true, 7: true, 8: true},
	}

	_, err := BindKeyboards(devs, BindOptions{Policy: BindAll}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, ErrNoDeviceOpened)
	assert.Contains(t, err.Error(), "BadDevice 8")
}

func TestBindKeyboardsListError(t *testing.T) {
	listErr := errors.New("XListInputDevices failed")
	devs := &fakeDevices{listErr: listErr}

	_, err := BindKeyboards(devs, BindOptions{Policy: BindAll}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, listErr)
	assert.NotErrorIs(t, err, ErrNoKeyboardFound)
}
