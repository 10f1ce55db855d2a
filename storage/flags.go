package storage

import "github.com/vkngwrapper/core/v2/common"

// BlockStorageCreateFlags indicate specific BlockStorage behaviors to activate or deactivate
type BlockStorageCreateFlags int32

var blockStorageCreateFlagsMapping = common.NewFlagStringMapping[BlockStorageCreateFlags]()

func (f BlockStorageCreateFlags) Register(str string) {
	blockStorageCreateFlagsMapping.Register(f, str)
}
func (f BlockStorageCreateFlags) String() string {
	return blockStorageCreateFlagsMapping.FlagsToString(f)
}

const (
	// BlockStorageCreateExternallySynchronized ensures that the storage and its arena will not be
	// synchronized internally. The consumer must guarantee they are used from only one goroutine at a
	// time or are synchronized by some other mechanism.
	BlockStorageCreateExternallySynchronized BlockStorageCreateFlags = 1 << iota
	// BlockStorageCreateNoInPlaceResize forces every grow and shrink to relocate the allocation, even
	// when the neighboring blocks would allow resizing it where it is
	BlockStorageCreateNoInPlaceResize
)

func init() {
	BlockStorageCreateExternallySynchronized.Register("BlockStorageCreateExternallySynchronized")
	BlockStorageCreateNoInPlaceResize.Register("BlockStorageCreateNoInPlaceResize")
}
