//go:build lhash_debug

package buildinfo

func init() {
	Tags = append(Tags, "lhash_debug")
}
