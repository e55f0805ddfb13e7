/*
NAME
  mixer.go

DESCRIPTION
  mixer.go implements the per-channel fade envelope and the two
  exponential-curve multiplier derivations the sound board uses to
  turn a linear mixing level or master volume byte into a 1.15
  multiplier: aggregate per-destination-channel mixing multipliers
  (UpdateMixingLevels) and the global master volume multiplier
  (SetMasterVolume). Both curves are built from the same repeated
  squaring idiom seeded with different magic constants, so they share
  the exponentiate helper below.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mixer derives playback volume multipliers from per-channel
// mixing levels and the global master volume byte, reproducing the
// sound board's exponential fade curves.
package mixer

import "github.com/ausocean/dcs/internal/fixed"

// MaxLevel bounds a channel's mixing level (a signed logarithmic-ish
// quantity symmetric about zero, not a linear gain) to +/-8191.
const MaxLevel = 8191

// Control holds one channel's fade envelope: its current level, the
// level a fade is moving toward, the per-step delta and the number of
// steps remaining. Channels with multiple mixing sources (one per
// possible source channel) keep an array of these, flattened to a 2D
// array keyed by (destination, source) rather than modelled as
// recursive per-channel objects.
type Control struct {
	CurLevel        int32
	FadeTargetLevel int32
	FadeDelta       int32
	FadeSteps       uint16
}

// Reset clears a Control back to silence with no fade in progress.
func (c *Control) Reset() {
	*c = Control{}
}

// SetLevel implements track program opcodes 0x07-0x0C: mode selects
// between an absolute level (0), an increase (1) or a decrease (2) of
// the current level by param, and steps is the fade duration in
// update ticks (zero for an immediate change). Matching the reference
// decoder exactly requires computing the delta from the unclamped new
// level before range-limiting it to +/-8191, since a fade ramp that
// would overshoot the limit is computed, then clamped, not the other
// way around.
func (c *Control) SetLevel(mode int, param int32, steps uint16) {
	oldLevel := c.CurLevel
	newLevel := oldLevel
	switch mode {
	case 0:
		newLevel = param
	case 1:
		newLevel = oldLevel + param
	case 2:
		newLevel = oldLevel - param
	}

	delta := newLevel - oldLevel
	newLevel = clampLevel(newLevel)

	c.FadeTargetLevel = newLevel
	c.FadeSteps = steps
	if steps != 0 {
		c.FadeDelta = delta / int32(steps)
	} else {
		c.CurLevel = newLevel
	}
}

// Advance steps one fade tick: decrements the remaining step count,
// adds the per-step delta to the current level and re-clamps it to
// +/-8191, and snaps exactly to the fade target on the final step, per
// UpdateMixingLevels's per-channel fade loop.
func (c *Control) Advance() {
	if c.FadeSteps == 0 {
		return
	}
	c.FadeSteps--
	if c.FadeSteps == 0 {
		c.CurLevel = c.FadeTargetLevel
		return
	}
	c.CurLevel = clampLevel(c.CurLevel + c.FadeDelta)
}

func clampLevel(v int32) int32 {
	switch {
	case v > MaxLevel:
		return MaxLevel
	case v < -MaxLevel:
		return -MaxLevel
	default:
		return v
	}
}

// baseSeed is the repeated-squaring base shared by both curves below,
// transcribed from the reference decoder's magic constant.
const baseSeed = 0x7C94

// exponentiate reproduces the decoder's shared approximate-exponential
// idiom: starting from multiplier, walk exp's eight bits from least to
// most significant, folding the current squared accumulator (seeded at
// seed) into multiplier whenever that bit is clear, then squaring the
// accumulator for the next bit. Both products are plain truncating
// 1.15 multiplies, not rounded ones.
func exponentiate(multiplier, seed uint16, exp uint16) uint16 {
	prod := seed
	for bit := uint(0); bit < 8; bit++ {
		if exp&(1<<bit) == 0 {
			multiplier = fixed.Mul(multiplier, prod)
		}
		prod = fixed.Mul(prod, prod)
	}
	return multiplier
}

// AggregateMultiplier derives the 1.15 mixing multiplier a destination
// channel applies to all of its summed source levels, per
// UpdateMixingLevels. sum is the saturated total of every active
// Control.CurLevel feeding that destination; isOS93a selects the
// initial multiplier convention used by the earliest dialect;
// channelVolume is the per-channel volume byte later dialects seed
// from instead; maxOverride (a channel with maxMixingLevelOverride
// set) replaces that starting multiplier with the one for channel
// volume 0xFF, and sum's exponent curve still applies to it.
func AggregateMultiplier(sum int32, isOS93a bool, channelVolume byte, maxOverride bool) uint16 {
	if sum > MaxLevel {
		sum = MaxLevel
	} else if sum < -MaxLevel {
		sum = -MaxLevel
	}
	mixerExp := uint16(((sum>>6)&0x3FF)&0xFF) + 0x80

	var multiplier uint16
	switch {
	case maxOverride:
		multiplier = uint16(0xFF) << 7
	case isOS93a:
		multiplier = 0x7FFF
	default:
		multiplier = uint16(channelVolume) << 7
	}

	multiplier = exponentiate(multiplier, baseSeed, mixerExp)
	return multiplier << 1
}

// masterSeedX and masterSeedY are SetMasterVolume's own repeated-
// squaring seeds, distinct from AggregateMultiplier's baseSeed.
const (
	masterSeedX = 0x3FFF
	masterSeedY = 0x7D98
)

// MasterVolumeMultiplier derives the global 1.15 volume multiplier
// from the raw master volume byte (0 is full mute, 0xFF is loudest),
// per SetMasterVolume. Volume 0 short-circuits to a multiplier of
// zero rather than running the squaring loop, matching the original's
// explicit mute special case.
func MasterVolumeMultiplier(volume byte) uint16 {
	if volume == 0 {
		return 0
	}
	return exponentiate(masterSeedX, masterSeedY, uint16(volume))
}
