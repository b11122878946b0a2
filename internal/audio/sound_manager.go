// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-swarm-shooter/internal/event"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.6
)

// SoundForEvent maps a game event to the effect it triggers.
func SoundForEvent(t event.EventType) SoundType {
	switch t {
	case event.ShotFired:
		return SoundShot
	case event.EnemyDamaged:
		return SoundHit
	case event.EnemyKilled:
		return SoundExplosion
	case event.PlayerDamaged:
		return SoundPlayerHurt
	case event.LevelUp:
		return SoundLevelUp
	case event.WeaponUpgraded:
		return SoundUpgrade
	case event.GameOver:
		return SoundGameOver
	}
	return SoundNone
}

// SoundManager plays procedural effects in response to game events.
// Before Initialize, or after it failed, every Play is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     func() bool
	volume      float64
}

// NewSoundManager creates a manager. enabled is consulted on every Play;
// nil means always on.
func NewSoundManager(enabled func() bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  defaultVolume,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe registers the manager for every event that has a sound.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.ShotFired, event.EnemyDamaged, event.EnemyKilled, event.PlayerDamaged,
		event.LevelUp, event.WeaponUpgraded, event.GameOver,
	)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if st := SoundForEvent(e.Type); st != SoundNone {
		sm.Play(st)
	}
}

// Play queues st on the mixer if sound is initialized and enabled.
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || (sm.enabled != nil && !sm.enabled()) {
		return false
	}
	s := NewSound(st, sm.volume, sampleRate)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Cleanup drops all queued sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
