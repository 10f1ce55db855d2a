package alloc

import "github.com/vkngwrapper/core/v2/common"

// BitmapCreateFlags indicate specific BitmapAllocator behaviors to activate or deactivate
type BitmapCreateFlags int32

var bitmapCreateFlagsMapping = common.NewFlagStringMapping[BitmapCreateFlags]()

func (f BitmapCreateFlags) Register(str string) {
	bitmapCreateFlagsMapping.Register(f, str)
}
func (f BitmapCreateFlags) String() string {
	return bitmapCreateFlagsMapping.FlagsToString(f)
}

const (
	// BitmapCreateExternallySynchronized ensures that the allocator will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time or is synchronized by
	// some other mechanism.
	BitmapCreateExternallySynchronized BitmapCreateFlags = 1 << iota
)

func init() {
	BitmapCreateExternallySynchronized.Register("BitmapCreateExternallySynchronized")
}
