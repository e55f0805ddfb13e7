/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the top-level Decoder and its host-facing API. It owns
  the channel array, command queue, data-port assembler and master/
  channel volume state, and orchestrates one 240-sample PCM frame per
  MainLoop call: honor stop flags, drain the command queue, run every
  channel's track byte-code program to completion (package track's
  Channel plus this file's opcode interpreter in interp.go), derive
  the frame's volume shift, decompress one frame per active channel
  (package codec/frame) into a shared frequency-domain buffer, run the
  inverse RDFT (package codec/rdft), update mixing fades and host
  event timers, and age the data-port timeout.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package decoder orchestrates the DCS codec's channel state machine,
// frame decompressor and inverse transform into the single-threaded
// main decode loop, exposing the decoder's host-facing API.
package decoder

import (
	"archive/zip"
	"bytes"

	"github.com/pkg/errors"

	"github.com/ausocean/dcs/codec/frame"
	"github.com/ausocean/dcs/codec/rdft"
	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/internal/bitio"
	"github.com/ausocean/dcs/internal/logging"
	"github.com/ausocean/dcs/mixer"
	"github.com/ausocean/dcs/rom"
	"github.com/ausocean/dcs/track"
)

// Game identifies per-title data-port quirks.
type Game int

const (
	GameGeneric Game = iota
	GameTOTAN
)

// defaultFirmwareVersion is the nominal firmware version most DCS-95
// ROMs report; it selects the 0x69/0x6A channel-5 max-mix-level quirk,
// which is specific to the 1.05 release.
const defaultFirmwareVersion = 0x0105

// MaxChannels mirrors track.MaxChannels: the decoder always allocates
// the full 8-channel array, even for firmware whose catalog uses
// fewer; unused high channels simply never receive track commands.
const MaxChannels = track.MaxChannels

// Decoder is the top-level DCS sound board emulation: the main decode
// loop driving the per-channel track interpreter, frame decompressor
// and inverse transform.
type Decoder struct {
	Host Host
	Log  logging.Logger

	Dialect format.Dialect
	HWEra   rom.HWEra
	Game    Game

	// FirmwareVersion is the nominal version byte the ROM's track
	// programs and data-port handler key off; ReportedVersion is what 0x55C2/0x55C3 echoes back -- two distinct version concepts the
	// original decoder also keeps apart.
	FirmwareVersion uint16
	ReportedVersion uint16

	ROM        *rom.ROM
	Catalog    *rom.Catalog
	TrackIndex rom.TrackIndex
	Variables  [256]byte

	Channels [MaxChannels]*track.Channel

	commandQueue []uint16
	dataPort     dataPortState

	masterVolume     byte
	volumeMultiplier uint16

	// frameBuf is the shared 256-sample frequency-domain accumulation
	// buffer every active channel's decompressor adds into: one buffer per MainLoop call, not one per
	// channel, since the original decoder mixes all channels into a
	// single frame before the inverse transform.
	frameBuf [format.FrameSize]uint16
	overlap  [format.OverlapSize]uint16

	// autobuffer holds the most recently transformed frame's PCM
	// samples and a read cursor, standing in for the ADSP-2105's DMA
	// autobuffer: MainLoop refills it and
	// GetNextSample drains it one sample at a time.
	autobuffer    [format.SamplesPerFrame]int16
	autobufferPos int
}

// New constructs a Decoder bound to host. Call InitStandalone or
// LoadROM before the first MainLoop call.
func New(host Host, log logging.Logger) *Decoder {
	if log == nil {
		log = logging.Discard
	}
	d := &Decoder{
		Host:            host,
		Log:             log,
		FirmwareVersion: defaultFirmwareVersion,
		ReportedVersion: format.ReportedVersion,
	}
	for i := range d.Channels {
		d.Channels[i] = track.NewChannel()
	}
	d.autobufferPos = format.SamplesPerFrame
	d.SetMasterVolume(0xFF)
	return d
}

// InitStandalone initializes the decoder for stream-only playback
//, with no ROM catalog/track index
// loaded: the host drives channels directly via LoadAudioStream and
// AddTrackCommand never resolves anything.
func (d *Decoder) InitStandalone(dialect format.Dialect) {
	d.Dialect = dialect
	if dialect == format.Os94Plus {
		d.HWEra = rom.DCS95
	} else {
		d.HWEra = rom.OriginalDCS
	}
	d.resetChannels()
}

// chipFileOrder gives the expected zip entry name prefix for each
// chip slot (U2 first): one file per populated chip, named by ROM
// designator. rom.Builder.Build returns its chip images in this same
// slot order (Image.Chips); it does not write a zip.
var chipFileOrder = []string{"u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9"}

// LoadROM loads a ROM image from a ZIP archive of per-chip binary
// files, named "u2.bin".."u9.bin" (case and any directory prefix are
// ignored); chips are taken in slot order up to the first missing one.
// The bit-stream dialect, and with it the hardware era, is the dialect
// argument: it replaces d.Dialect, and nothing in the ROM is read to
// detect the OS version.
func (d *Decoder) LoadROM(zipBytes []byte, dialect format.Dialect) error {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return errors.Wrap(err, "decoder: opening ROM zip")
	}
	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		byName[normalizeChipName(f.Name)] = f
	}
	var chips [][]byte
	for _, want := range chipFileOrder {
		f, ok := byName[want]
		if !ok {
			break
		}
		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, "decoder: opening %s", f.Name)
		}
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(rc); err != nil {
			rc.Close()
			return errors.Wrapf(err, "decoder: reading %s", f.Name)
		}
		rc.Close()
		chips = append(chips, buf.Bytes())
	}
	if len(chips) == 0 {
		return errors.New("decoder: ROM zip has no recognized chip images (expected u2.bin..u9.bin)")
	}
	d.Dialect = dialect
	if dialect == format.Os94Plus {
		d.HWEra = rom.DCS95
	} else {
		d.HWEra = rom.OriginalDCS
	}
	d.ROM = rom.NewROM(d.HWEra, chips)
	return d.SoftBoot()
}

// normalizeChipName strips any directory prefix and extension from a
// zip entry name and lower-cases it, so "ROM/U2.BIN" matches "u2".
func normalizeChipName(name string) string {
	slash := -1
	for i, c := range name {
		if c == '/' || c == '\\' {
			slash = i
		}
	}
	if slash >= 0 {
		name = name[slash+1:]
	}
	dot := -1
	for i, c := range name {
		if c == '.' {
			dot = i
		}
	}
	if dot >= 0 {
		name = name[:dot]
	}
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// catalogOffset is the fixed byte offset of the catalog in U2,
// matching the layout every retail DCS ROM uses; images from
// rom.Builder load here only when its CatalogOffset is this value.
const catalogOffset = 0x0010

// SoftBoot (re)parses the catalog, track index and deferred-indirect
// index from the currently loaded ROM and resets every channel to its
// power-on state. Call it after LoadROM, or
// again to simulate a board reset without reloading ROM bytes.
func (d *Decoder) SoftBoot() error {
	if d.ROM == nil {
		return errors.New("decoder: SoftBoot with no ROM loaded")
	}
	cat, err := rom.ReadCatalog(d.ROM.U2(), catalogOffset)
	if err != nil {
		return errors.Wrap(err, "decoder: reading catalog")
	}
	d.Catalog = cat
	ti, err := rom.ReadTrackIndex(d.ROM, cat.TrackIndexPtr, int(cat.TrackCount))
	if err != nil {
		return errors.Wrap(err, "decoder: reading track index")
	}
	d.TrackIndex = ti
	d.resetChannels()
	d.Log.Info("decoder: soft boot complete", "dialect", d.Dialect.String(), "tracks", len(ti))
	return nil
}

func (d *Decoder) resetChannels() {
	for i := range d.Channels {
		d.Channels[i] = track.NewChannel()
		d.Channels[i].ChannelVolume = 0xFF
	}
	d.dataPort = dataPortState{}
	d.commandQueue = d.commandQueue[:0]
	d.autobufferPos = format.SamplesPerFrame
}

// AddTrackCommand queues a track-index command exactly as if it had
// arrived on the data port.
func (d *Decoder) AddTrackCommand(cmd uint16) {
	d.commandQueue = append(d.commandQueue, cmd)
}

// ClearTracks halts every channel's track program and audio stream
// immediately, without waiting for a main
// loop pass.
func (d *Decoder) ClearTracks() {
	for _, ch := range d.Channels {
		ch.TrackPtr = rom.NullAddr
		ch.Stream.Clear()
	}
}

// SetMasterVolume sets the global volume byte (0..255) and re-derives
// the 1.15 volume multiplier.
func (d *Decoder) SetMasterVolume(v byte) {
	d.masterVolume = v
	d.volumeMultiplier = mixer.MasterVolumeMultiplier(v)
}

// SetChannelVolume sets one channel's volume byte, used as the starting point for that
// channel's aggregate mixing multiplier on OS93b-and-later firmware.
func (d *Decoder) SetChannelVolume(ch int, v byte) {
	if ch < 0 || ch >= MaxChannels {
		return
	}
	d.Channels[ch].ChannelVolume = uint16(v)
}

// LoadAudioStream directly loads a stream into a channel, bypassing
// the track byte-code interpreter,
// equivalent to the reference decoder's public two-argument
// LoadAudioStream overload: it also cancels any track program running
// on that channel and sets a flat (non-fading) mixing level.
func (d *Decoder) LoadAudioStream(ch int, ptr rom.Addr, mixingLevel int) error {
	if ch < 0 || ch >= MaxChannels {
		return errors.Errorf("decoder: channel %d out of range", ch)
	}
	c := d.Channels[ch]
	c.TrackPtr = rom.NullAddr
	if err := d.loadAudioStream(ch, ch, 1, ptr); err != nil {
		return err
	}
	m := &c.Mixer[ch]
	m.Reset()
	level := int32(mixingLevel) << 6
	m.CurLevel, m.FadeTargetLevel = level, level
	return nil
}

// StreamInfo describes a stream's header and size.
type StreamInfo struct {
	NumFrames     uint16
	NumBytes      int
	FormatType    int
	FormatSubType int
	Header        [format.NumBands]byte
}

// GetStreamInfo parses a stream's header at ptr and walks its frames
// to determine its total encoded size, without altering any channel
// state.
func (d *Decoder) GetStreamInfo(ptr rom.Addr) (StreamInfo, error) {
	if d.ROM == nil {
		return StreamInfo{}, errors.New("decoder: GetStreamInfo with no ROM loaded")
	}
	s, err := rom.ReadStream(d.ROM, ptr, d.Dialect)
	if err != nil {
		return StreamInfo{}, err
	}
	var info StreamInfo
	info.NumFrames = s.NumFrames
	info.FormatType = s.Header.MajorType
	info.FormatSubType = s.Header.SubType
	for i := 0; i < s.Header.NumBands && i < format.NumBands; i++ {
		info.Header[i] = s.Header.Bands[i].ScalingCode
	}

	tail, err := d.ROM.ChipTail(s.BitsStart)
	if err != nil {
		return StreamInfo{}, err
	}
	r := bitio.NewReader(tail, 0)
	state := freshStreamState(d.Dialect, s.Header.MajorType)
	buf := make([]uint16, format.FrameSize)
	var hdr [format.NumBands]byte
	for i := 0; i < s.Header.NumBands && i < format.NumBands; i++ {
		hdr[i] = s.Header.Bands[i].ScalingCode
		if s.Header.Bands[i].HalfDensity {
			hdr[i] |= 0x40
		}
	}
	if s.Header.MajorType == 1 {
		hdr[0] |= 0x80
	}
	for i := uint16(0); i < s.NumFrames; i++ {
		decompressFrame(d.Dialect, r, hdr, &state, 0, buf)
	}
	byteOff, bitOff := r.BytePos()
	info.NumBytes = int(s.BitsStart) - int(ptr) + byteOff
	if bitOff != 0 {
		info.NumBytes++
	}
	return info, nil
}

func freshStreamState(dialect format.Dialect, majorType int) frame.StreamState {
	if dialect == format.Os94Plus {
		return frame.StreamState{}
	}
	return frame.NewStreamState93(majorType)
}

// decompressFrame dispatches to the dialect-specific decompressor
//, matching the selection ReadStream/IsShortHeader use:
// OS93a streams whose header's high bit is set are the Type-1 sample-
// pair format; every other stream uses OS93 (OS93a Type-0, all
// OS93b) or OS94+.
func decompressFrame(dialect format.Dialect, r *bitio.Reader, hdr [format.NumBands]byte, state *frame.StreamState, mixMul uint16, buf []uint16) {
	switch {
	case dialect == format.Os93a && hdr[0]&0x80 != 0:
		frame.DecompressOS93aType1(r, hdr[0], mixMul, buf)
	case dialect == format.Os94Plus:
		frame.DecompressOS94(r, hdr, state, mixMul, buf)
	default:
		frame.DecompressOS93(r, hdr, state, mixMul, buf)
	}
}

// GetNextSample pulls one PCM sample from the autobuffer, running MainLoop to refill it whenever it runs
// dry.
func (d *Decoder) GetNextSample() (int16, error) {
	if d.autobufferPos >= len(d.autobuffer) {
		if err := d.MainLoop(); err != nil {
			return 0, err
		}
	}
	s := d.autobuffer[d.autobufferPos]
	d.autobufferPos++
	return s, nil
}

// IRQ2 delivers one byte from the host to the decoder's data port
//, driving the protocol state machine in dataport.go.
func (d *Decoder) IRQ2(b byte) {
	d.irq2(b)
}

// MainLoop advances the decoder by exactly one 240-sample frame,
// refilling the autobuffer. Channels whose stop flag is set are torn
// down first; the decompressors do not detect frame corruption and
// never set that flag. Only a fatal reset condition (invalid opcode, invalid track type) is
// returned as an error here, since the reference firmware handles
// those by resetting the whole board: callers that get a non-nil
// error must treat the decoder as needing SoftBoot.
func (d *Decoder) MainLoop() error {
	for i := range d.frameBuf {
		d.frameBuf[i] = 0
	}

	for _, ch := range d.Channels {
		if !ch.Stop {
			continue
		}
		ch.Stop = false
		if ch.Stream.Bits != nil {
			ch.Stream.Clear()
			d.clearChannelMixingContribution(indexOf(d.Channels[:], ch))
		}
		ch.HostTimer.Clear()
		ch.TrackPtr = rom.NullAddr
	}

	if err := d.drainCommandQueue(); err != nil {
		return err
	}

	if err := d.runTrackPrograms(); err != nil {
		return err
	}

	volShift := d.computeVolumeShift()

	for ch := range d.Channels {
		d.decodeChannelFrame(ch)
	}

	var pcm [format.SamplesPerFrame]uint16
	switch d.Dialect.Algorithm() {
	case format.RDFT1994Plus:
		pcm = rdft.Transform94(d.frameBuf[:], &d.overlap, volShift)
	default:
		pcm = rdft.Transform93(d.frameBuf[:], &d.overlap, volShift)
	}
	for i, v := range pcm {
		d.autobuffer[i] = int16(v)
	}
	d.autobufferPos = 0

	d.updateMixingLevels()

	d.dataPort.timeout++
	if d.dataPort.timeout > dataPortTimeoutMax {
		d.dataPort.timeout = dataPortTimeoutMax
	}
	return nil
}

func indexOf(chans []*track.Channel, target *track.Channel) int {
	for i, c := range chans {
		if c == target {
			return i
		}
	}
	return -1
}

// drainCommandQueue processes every queued command:
// a command is a track-index number; type-1 targets load a track
// program, type 2/3 targets are stashed as a deferred link, and any
// other first byte is a fatal reset.
func (d *Decoder) drainCommandQueue() error {
	for len(d.commandQueue) > 0 {
		cmd := d.commandQueue[0]
		d.commandQueue = d.commandQueue[1:]

		if d.TrackIndex == nil || int(cmd) >= len(d.TrackIndex) {
			continue
		}
		ptr := d.TrackIndex[cmd]
		if ptr.IsNull() {
			continue
		}
		hdr, body, err := rom.ReadTrackTarget(d.ROM, ptr)
		if err != nil {
			return err
		}
		if int(hdr.Channel) >= len(d.Channels) {
			return errors.Errorf("decoder: track targets channel %d, have %d: resetting", hdr.Channel, len(d.Channels))
		}
		switch hdr.Type {
		case rom.TrackTypeProgram:
			d.loadTrack(int(hdr.Channel), body)
		case rom.TrackTypeDeferred, rom.TrackTypeIndirect:
			link, err := d.ROM.Word(body)
			if err != nil {
				return err
			}
			ch := d.Channels[hdr.Channel]
			ch.NextTrackType = hdr.Type
			ch.NextTrackLink = link
		default:
			return errors.Errorf("decoder: invalid track type %d: resetting", hdr.Type)
		}
	}
	return nil
}

// runTrackPrograms executes every channel's active track program once,
// in channel order, until it ends or pauses. No channel is revisited
// within a pass: commands that opcodes 0x03 and 0x05 queue are drained
// at the start of the next MainLoop call.
func (d *Decoder) runTrackPrograms() error {
	done := make([]bool, len(d.Channels))
	remaining := len(d.Channels)
	for ch := 0; remaining > 0; ch = (ch + 1) % len(d.Channels) {
		if done[ch] {
			continue
		}
		if err := d.execTrack(ch); err != nil {
			return err
		}
		done[ch] = true
		remaining--
	}
	return nil
}

// computeVolumeShift derives volShift as the sum of every active
// channel's effective volume level, then rescales each channel's mixing multiplier into
// that shift's scale.
func (d *Decoder) computeVolumeShift() int {
	var mixingSum int64
	for _, ch := range d.Channels {
		switch {
		case ch.MaxMixOverride:
			mixingSum += int64(ch.MixMultiplier) * 0x7FFE
		case ch.Stream.Bits != nil:
			mixingSum += int64(ch.MixMultiplier) * int64(d.volumeMultiplier)
		}
	}
	mixingSum >>= 2
	volShift := -(fixedCalcExp32(mixingSum) + 3)
	if volShift < 0 {
		volShift = 0
	} else if volShift > 8 {
		volShift = 8
	}

	for _, ch := range d.Channels {
		v := d.volumeMultiplier
		if ch.MaxMixOverride {
			v = 0x7FFE
		}
		m := (uint64(ch.MixMultiplier) * uint64(v)) << 1
		ch.MixMultiplier = uint16((m << uint(volShift)) >> 16)
	}
	return volShift
}

// decodeChannelFrame decompresses channel ch's next frame into the
// shared frame buffer and advances its stream/loop state.
func (d *Decoder) decodeChannelFrame(ch int) {
	c := d.Channels[ch]
	str := &c.Stream
	if str.Bits == nil {
		return
	}

	if str.AtStart {
		str.Header = [16]byte{}
		n, err := d.ROM.Bytes(str.HeaderPtr, str.HeaderLength)
		if err == nil {
			copy(str.Header[:], n)
		}
		str.State = freshStreamState(d.Dialect, headerMajorType(str.Header[0]))
		str.AtStart = false
	}

	decompressFrame(d.Dialect, str.Bits, str.Header, &str.State, c.MixMultiplier, d.frameBuf[:])

	str.FrameCounter--
	if str.FrameCounter != 0 {
		return
	}
	str.FrameCounter = str.NumFrames
	str.Bits = newBitsReader(d.ROM, str.StartPtr)
	str.AtStart = true

	if str.LoopCounter == 0 {
		return
	}
	str.LoopCounter--
	if str.LoopCounter != 0 {
		return
	}
	str.Bits = nil
	c.SourceChannel = -1
}

func headerMajorType(b byte) int {
	if b&0x80 != 0 {
		return 1
	}
	return 0
}

func newBitsReader(r *rom.ROM, addr rom.Addr) *bitio.Reader {
	tail, err := r.ChipTail(addr)
	if err != nil {
		return nil
	}
	return bitio.NewReader(tail, 0)
}

// updateMixingLevels advances every fade by one tick, re-derives each
// channel's aggregate mixing multiplier from its mixer array, and
// services per-channel host event timers.
func (d *Decoder) updateMixingLevels() {
	for _, ch := range d.Channels {
		for j := range ch.Mixer {
			ch.Mixer[j].Advance()
		}
	}
	for i, ch := range d.Channels {
		var sum int32
		for j := range ch.Mixer {
			sum += ch.Mixer[j].CurLevel
		}
		isOS93a := d.Dialect == format.Os93a
		ch.MixMultiplier = mixer.AggregateMultiplier(sum, isOS93a, byte(ch.ChannelVolume), ch.MaxMixOverride)
		_ = i
	}
	for _, ch := range d.Channels {
		ch.TrackCounter++
		if ch.HostTimer.Update() {
			d.Host.ReceiveDataPort(ch.HostTimer.Data)
		}
	}
}

// clearChannelMixingContribution clears channel src's mixing
// contribution to every other channel (reference decoder's
// ResetMixingLevels(ch), not to be confused with track.Channel's own
// ResetMixingLevels method, which clears the opposite direction -- a
// channel's own incoming mixer array).
func (d *Decoder) clearChannelMixingContribution(src int) {
	if src < 0 {
		return
	}
	for _, ch := range d.Channels {
		ch.Mixer[src].Reset()
	}
}

// fixedCalcExp32 adapts calcExp32 below (not internal/fixed.CalcExp32)
// to the 64-bit mixing-sum accumulator the volume-shift derivation
// needs: values beyond uint32 range saturate to 0xFFFFFFFF (exponent
// 0, the smallest volume shift) rather than overflowing, since a sum that large only
// occurs with pathological (synthetic, all max-override) inputs no
// real ROM track program produces.
func fixedCalcExp32(v int64) int {
	if v <= 0 {
		return 0
	}
	if v > 0xFFFFFFFF {
		v = 0xFFFFFFFF
	}
	return calcExp32(uint32(v))
}

// calcExp32 returns the negated count of leading zero bits of x (32
// for x == 0, which fixedCalcExp32 never passes), mirroring ADSP-2105
// EXP semantics for an unsigned normalization target (internal/fixed.CalcExp32
// is tuned for the signed MR accumulator case; volume-shift derivation
// needs the plain unsigned count).
func calcExp32(x uint32) int {
	if x == 0 {
		return 32
	}
	n := 0
	for x&0x80000000 == 0 {
		x <<= 1
		n++
	}
	return -n
}
