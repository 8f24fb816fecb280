// Package audio holds the recorder's signal path: microphone capture and
// playback through PortAudio, the WAV container, the frequency analyser
// feeding the live visualization, the bar canvas it is drawn on, and the
// synthesized timer completion cue.
package audio
