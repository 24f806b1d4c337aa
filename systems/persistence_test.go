package systems

import (
	"errors"
	"testing"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s itemStore) {
	t.Helper()
	prevStore := store
	prevVol, prevMuted, prevBest := globalSFXVolume, globalMuted, globalBestScore
	store = s
	t.Cleanup(func() {
		store = prevStore
		globalSFXVolume, globalMuted, globalBestScore = prevVol, prevMuted, prevBest
	})
}

func TestSettingsRoundTripThroughStore(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	withStore(t, mem)

	SetSFXVolume(0.4)
	SetMuted(true)
	globalBestScore = 12
	SaveCurrentSettings()

	SetSFXVolume(1)
	SetMuted(false)
	globalBestScore = 0

	saved, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if saved == nil {
		t.Fatal("LoadSettings returned nothing after a save")
	}
	ApplySavedSettingsGlobal(saved)

	if GetSFXVolume() != 0.4 {
		t.Errorf("volume = %v, want 0.4", GetSFXVolume())
	}
	if !IsMuted() {
		t.Error("muted flag was not restored")
	}
	if BestScore() != 12 {
		t.Errorf("best score = %d, want 12", BestScore())
	}
}

func TestLoadSettingsWithoutSave(t *testing.T) {
	withStore(t, &memStore{items: map[string][]byte{}})

	saved, err := LoadSettings()
	if err != nil || saved != nil {
		t.Fatalf("LoadSettings = %v, %v; want nil, nil", saved, err)
	}
}

func TestLoadSettingsRejectsCorruptData(t *testing.T) {
	withStore(t, &memStore{items: map[string][]byte{settingsKey: []byte("{not json")}})

	if _, err := LoadSettings(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSaveSettingsReportsStoreError(t *testing.T) {
	withStore(t, &memStore{items: map[string][]byte{}, saveErr: errors.New("disk full")})

	if err := SaveSettings(&SavedSettings{}); err == nil {
		t.Fatal("expected the store error")
	}
}

func TestRecordScoreKeepsMaximum(t *testing.T) {
	withStore(t, nil)
	globalBestScore = 5

	if RecordScore(3) {
		t.Error("lower score reported as a new best")
	}
	if !RecordScore(8) {
		t.Error("higher score not reported as a new best")
	}
	if BestScore() != 8 {
		t.Errorf("best = %d, want 8", BestScore())
	}
	ApplySavedSettingsGlobal(&SavedSettings{SFXVolume: 1, BestScore: 6})
	if BestScore() != 8 {
		t.Errorf("older saved best overwrote the live one: %d", BestScore())
	}
}

func TestCycleSFXVolumeWraps(t *testing.T) {
	withStore(t, nil)

	SetSFXVolume(0.5)
	if got := CycleSFXVolume(); got != 0.75 {
		t.Errorf("after 0.5: %v, want 0.75", got)
	}
	SetSFXVolume(1)
	if got := CycleSFXVolume(); got != 0 {
		t.Errorf("after 1: %v, want wrap to 0", got)
	}
	SetSFXVolume(0.3)
	if got := CycleSFXVolume(); got != 0.5 {
		t.Errorf("after 0.3: %v, want 0.5", got)
	}
}
