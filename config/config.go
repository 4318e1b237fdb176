// Package config holds runtime tuning loaded from TOML on top of compiled defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Engine     EngineConfig     `toml:"engine"`
	Player     PlayerConfig     `toml:"player"`
	Projectile ProjectileConfig `toml:"projectile"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Session    SessionConfig    `toml:"session"`
	Difficulty DifficultyConfig `toml:"difficulty"`
	Audio      AudioConfig      `toml:"audio"`
	Server     ServerConfig     `toml:"server"`
	Level      LevelConfig      `toml:"level"`
}

type EngineConfig struct {
	Substeps      int     `toml:"substeps"`
	MaxFrameDelta float64 `toml:"max_frame_delta"`
	Seed          int64   `toml:"seed"`
}

type PlayerConfig struct {
	Radius           float64 `toml:"radius"`
	SpawnStartY      float64 `toml:"spawn_start_y"`
	SpawnEndY        float64 `toml:"spawn_end_y"`
	OutOfBoundsY     float64 `toml:"out_of_bounds_y"`
	GroundAccel      float64 `toml:"ground_accel"`
	AirAccel         float64 `toml:"air_accel"`
	JumpSpeed        float64 `toml:"jump_speed"`
	Gravity          float64 `toml:"gravity"`
	DampingRate      float64 `toml:"damping_rate"`
	AirDampingFactor float64 `toml:"air_damping_factor"`
	LookSensitivity  float64 `toml:"look_sensitivity"`
	TouchSensitivity float64 `toml:"touch_sensitivity"`
}

type ProjectileConfig struct {
	Radius         float64 `toml:"radius"`
	Gravity        float64 `toml:"gravity"`
	MaxRange       float64 `toml:"max_range"`
	Restitution    float64 `toml:"restitution"`
	RestFriction   float64 `toml:"rest_friction"`
	SpawnOffset    float64 `toml:"spawn_offset"`
	PlayerSpeedMin float64 `toml:"player_speed_min"`
	PlayerSpeedMax float64 `toml:"player_speed_max"`
	EnemySpeed     float64 `toml:"enemy_speed"`
	PlayerHoming   float64 `toml:"player_homing"`
	EnemyHoming    float64 `toml:"enemy_homing"`
	PickupRadius   float64 `toml:"pickup_radius"`
	PlayerHitRange float64 `toml:"player_hit_radius"`
	EnemyHitRange  float64 `toml:"enemy_hit_radius"`
}

type EnemyConfig struct {
	Radius           float64 `toml:"radius"`
	SteerRate        float64 `toml:"steer_rate"`
	StopDistance     float64 `toml:"stop_distance"`
	ThrowRange       float64 `toml:"throw_range"`
	MaxAlive         int     `toml:"max_alive"`
	SpawnRadiusMin   float64 `toml:"spawn_radius_min"`
	SpawnRadiusMax   float64 `toml:"spawn_radius_max"`
	SpawnHeight      float64 `toml:"spawn_height"`
	SpawnJitter      float64 `toml:"spawn_jitter"`
	ThrowInterval    float64 `toml:"throw_interval"`
	ThreatThrowScale float64 `toml:"threat_throw_scale"`
	LeadTarget       bool    `toml:"lead_target"`
	ThreatRadius     float64 `toml:"threat_radius"`
	ThreatHorizon    float64 `toml:"threat_horizon"`
	ThreatProximity  float64 `toml:"threat_proximity"`
	ThreatNormalizer float64 `toml:"threat_normalizer"`
	ThreatSpeedScale float64 `toml:"threat_speed_scale"`
	DodgeClearance   float64 `toml:"dodge_clearance"`
	DodgeDuration    float64 `toml:"dodge_duration"`
	DodgeRandomBonus float64 `toml:"dodge_random_bonus"`
	DodgeThreatBonus float64 `toml:"dodge_threat_bonus"`
}

type SessionConfig struct {
	Duration      int     `toml:"duration"`
	MaxAmmo       int     `toml:"max_ammo"`
	ChargeMax     float64 `toml:"charge_max"`
	ChargeRate    float64 `toml:"charge_rate"`
	LockOnConeDeg float64 `toml:"lock_on_cone_deg"`
	KillScore     int     `toml:"kill_score"`
	HitPenalty    int     `toml:"hit_penalty"`
}

// DifficultyConfig describes the level curve; each quantity moves by Step per level until its bound
type DifficultyConfig struct {
	Step                 float64 `toml:"step"`
	SpawnIntervalInitial float64 `toml:"spawn_interval_initial"`
	SpawnIntervalMin     float64 `toml:"spawn_interval_min"`
	SpawnIntervalStep    float64 `toml:"spawn_interval_step"`
	DodgeCooldownInitial float64 `toml:"dodge_cooldown_initial"`
	DodgeCooldownMin     float64 `toml:"dodge_cooldown_min"`
	DodgeCooldownStep    float64 `toml:"dodge_cooldown_step"`
	DodgeSpeedInitial    float64 `toml:"dodge_speed_initial"`
	DodgeSpeedMax        float64 `toml:"dodge_speed_max"`
	DodgeSpeedStep       float64 `toml:"dodge_speed_step"`
	MoveSpeedInitial     float64 `toml:"move_speed_initial"`
	MoveSpeedMax         float64 `toml:"move_speed_max"`
	MoveSpeedStep        float64 `toml:"move_speed_step"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type ServerConfig struct {
	Addr          string `toml:"addr"`
	TickRate      int    `toml:"tick_rate"`
	SnapshotEvery int    `toml:"snapshot_every"`
}

// Box is an axis-aligned static obstacle
type Box struct {
	Min [3]float64 `toml:"min"`
	Max [3]float64 `toml:"max"`
}

// LevelConfig replaces the built-in arena when Boxes is non-empty
type LevelConfig struct {
	Boxes []Box `toml:"boxes"`
}

// Default returns the compiled-in tuning
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Substeps:      parameter.Substeps,
			MaxFrameDelta: parameter.MaxFrameDelta,
			Seed:          parameter.DefaultSeed,
		},
		Player: PlayerConfig{
			Radius:           parameter.PlayerRadius,
			SpawnStartY:      parameter.PlayerSpawnStartY,
			SpawnEndY:        parameter.PlayerSpawnEndY,
			OutOfBoundsY:     parameter.PlayerOutOfBoundsY,
			GroundAccel:      parameter.PlayerGroundAccel,
			AirAccel:         parameter.PlayerAirAccel,
			JumpSpeed:        parameter.PlayerJumpSpeed,
			Gravity:          parameter.Gravity,
			DampingRate:      parameter.DampingRate,
			AirDampingFactor: parameter.AirDampingFactor,
			LookSensitivity:  parameter.LookSensitivity,
			TouchSensitivity: parameter.TouchSensitivity,
		},
		Projectile: ProjectileConfig{
			Radius:         parameter.ProjectileRadius,
			Gravity:        parameter.ProjectileGravity,
			MaxRange:       parameter.ProjectileMaxRange,
			Restitution:    parameter.ProjectileRestitution,
			RestFriction:   parameter.ProjectileRestFriction,
			SpawnOffset:    parameter.ProjectileSpawnOffset,
			PlayerSpeedMin: parameter.PlayerThrowSpeedMin,
			PlayerSpeedMax: parameter.PlayerThrowSpeedMax,
			EnemySpeed:     parameter.EnemyThrowSpeed,
			PlayerHoming:   parameter.PlayerHomingFraction,
			EnemyHoming:    parameter.EnemyHomingFraction,
			PickupRadius:   parameter.PickupRadius,
			PlayerHitRange: parameter.PlayerHitRadius,
			EnemyHitRange:  parameter.EnemyHitRadius,
		},
		Enemy: EnemyConfig{
			Radius:           parameter.EnemyRadius,
			SteerRate:        parameter.EnemySteerRate,
			StopDistance:     parameter.EnemyStopDistance,
			ThrowRange:       parameter.EnemyThrowRange,
			MaxAlive:         parameter.EnemyMaxAlive,
			SpawnRadiusMin:   parameter.EnemySpawnRadiusMin,
			SpawnRadiusMax:   parameter.EnemySpawnRadiusMax,
			SpawnHeight:      parameter.EnemySpawnHeight,
			SpawnJitter:      parameter.EnemySpawnJitter,
			ThrowInterval:    parameter.EnemyThrowInterval,
			ThreatThrowScale: parameter.EnemyThreatThrowScale,
			LeadTarget:       parameter.EnemyLeadTarget,
			ThreatRadius:     parameter.ThreatRadius,
			ThreatHorizon:    parameter.ThreatHorizon,
			ThreatProximity:  parameter.ThreatProximity,
			ThreatNormalizer: parameter.ThreatNormalizer,
			ThreatSpeedScale: parameter.ThreatSpeedScale,
			DodgeClearance:   parameter.DodgeClearance,
			DodgeDuration:    parameter.DodgeDuration,
			DodgeRandomBonus: parameter.DodgeRandomBonus,
			DodgeThreatBonus: parameter.DodgeThreatBonus,
		},
		Session: SessionConfig{
			Duration:      parameter.SessionDuration,
			MaxAmmo:       parameter.MaxAmmo,
			ChargeMax:     parameter.ChargeMax,
			ChargeRate:    parameter.ChargeRate,
			LockOnConeDeg: parameter.LockOnConeDeg,
			KillScore:     parameter.ScoreEnemyDefeated,
			HitPenalty:    parameter.ScorePlayerHitPenalty,
		},
		Difficulty: DifficultyConfig{
			Step:                 parameter.DifficultyStep,
			SpawnIntervalInitial: parameter.SpawnIntervalInitial,
			SpawnIntervalMin:     parameter.SpawnIntervalMin,
			SpawnIntervalStep:    parameter.SpawnIntervalStep,
			DodgeCooldownInitial: parameter.DodgeCooldownInitial,
			DodgeCooldownMin:     parameter.DodgeCooldownMin,
			DodgeCooldownStep:    parameter.DodgeCooldownStep,
			DodgeSpeedInitial:    parameter.DodgeSpeedInitial,
			DodgeSpeedMax:        parameter.DodgeSpeedMax,
			DodgeSpeedStep:       parameter.DodgeSpeedStep,
			MoveSpeedInitial:     parameter.EnemySpeedInitial,
			MoveSpeedMax:         parameter.EnemySpeedMax,
			MoveSpeedStep:        parameter.EnemySpeedStep,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Server: ServerConfig{
			Addr:          parameter.ServerAddr,
			TickRate:      parameter.ServerTickRate,
			SnapshotEvery: parameter.SnapshotEvery,
		},
	}
}

// Load decodes path over the defaults
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg to path, creating parent directories
func Write(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
