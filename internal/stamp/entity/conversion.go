package entity

// Conversion is a resolved point in time: the Unix timestamp in seconds and
// its RFC 2822 rendering with a UTC (+0000) offset. It lives only for the
// request that produced it.
type Conversion struct {
	Unix int64
	UTC  string
}
