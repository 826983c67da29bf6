// Package diag is the single diagnostic sink for the bus and rasterizer.
// Every "log and return zero/drop" path spec.md calls for funnels through
// here instead of each package reaching for its own logger.
package diag

import "github.com/sirupsen/logrus"

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// UnmappedRead logs a read from an address no bank or I/O register claims.
func UnmappedRead(proc, addr any, width int) {
	log.WithFields(logrus.Fields{"proc": proc, "addr": addr, "width": width}).
		Debug("unmapped read")
}

// UnmappedWrite logs a dropped write to an address no bank or I/O
// register claims.
func UnmappedWrite(proc, addr any, width int) {
	log.WithFields(logrus.Fields{"proc": proc, "addr": addr, "width": width}).
		Debug("unmapped write")
}

// UnknownIO logs an access inside the I/O window that no register covers.
func UnknownIO(proc, addr any, write bool) {
	log.WithFields(logrus.Fields{"proc": proc, "addr": addr, "write": write}).
		Debug("unknown I/O register")
}

// UnsupportedVRAMMST logs an unrecognised VRAMCNT mapping-select value;
// the caller must still zero the bank's base.
func UnsupportedVRAMMST(bank byte, mst uint8) {
	log.WithFields(logrus.Fields{"bank": string(bank), "mst": mst}).
		Debug("unsupported VRAM MST")
}

// UnimplementedBlendMode logs a polygon blend mode with no defined
// behaviour; the caller falls back to the raw texel.
func UnimplementedBlendMode(mode uint8) {
	log.WithField("mode", mode).Debug("unimplemented 3D blend mode")
}
