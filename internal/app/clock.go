package app

import (
	"fmt"
	"time"
)

// Clock counts whole seconds of unpaused play.
type Clock struct {
	seconds int
}

// Tick adds one second. It is the body of the clock task.
func (c *Clock) Tick() {
	c.seconds++
}

func (c *Clock) Minutes() int {
	return c.seconds / 60
}

func (c *Clock) Seconds() int {
	return c.seconds % 60
}

// Elapsed returns the counted time as a duration.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.seconds) * time.Second
}

// String formats the clock as MM:SS. Minutes keep growing past 99.
func (c *Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes(), c.Seconds())
}
