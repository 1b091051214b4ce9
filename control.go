package jpeg

import (
	"github.com/rs/zerolog"
)

// Control gates parsing verbosity, the same role the teacher lineage's
// Control struct plays, but the leaf sink is a zerolog.Logger instead of
// flag-gated fmt.Printf calls.
type Control struct {
	Markers bool // log each marker as it is dispatched
	Content bool // log segment contents (APP0 fields, table sizes, ...)
	Mcu     bool // log each decoded MCU

	Log *zerolog.Logger // nil is treated as a disabled logger
}

func (c *Control) logger() *zerolog.Logger {
	if c == nil || c.Log == nil {
		l := zerolog.Nop()
		return &l
	}
	return c.Log
}

func (c *Control) markers() bool { return c != nil && c.Markers }
func (c *Control) content() bool { return c != nil && c.Content }
func (c *Control) mcu() bool     { return c != nil && c.Mcu }

func (c *Control) logMarker(name string, offset int) {
	if c.markers() {
		c.logger().Debug().Str("marker", name).Int("offset", offset).Msg("marker")
	}
}

func (c *Control) logContent(msg string, fields map[string]interface{}) {
	if !c.content() {
		return
	}
	ev := c.logger().Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (c *Control) warn(msg string) {
	c.logger().Warn().Msg(msg)
}
