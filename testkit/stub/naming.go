package stub

import "strings"

const (
	base64chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+~"

	anonymousPrefix = "$"
	adapterPrefix   = "$!"
)

// base64 renders n least significant digit first, as actor runtimes do
// for generated names: 0 is "a", 63 is "~", 64 is "ab".
func base64(n uint64, prefix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for {
		sb.WriteByte(base64chars[n&63])
		n >>= 6
		if n == 0 {
			return sb.String()
		}
	}
}

// nameGenerator hands out child names no user-chosen name can collide with.
// Anonymous children and adapters share the counter.
type nameGenerator struct {
	next uint64
}

func (g *nameGenerator) anonymous() string {
	name := base64(g.next, anonymousPrefix)
	g.next++
	return name
}

func (g *nameGenerator) adapter(prefix string) string {
	name := base64(g.next, adapterPrefix)
	g.next++
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}
