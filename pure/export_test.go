package pure

var WithClock = withClock
