package storage

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/stowage/memutils"
)

// CopyRegion describes which part of an allocation's old contents must survive a resize, and where
// it lands in the new allocation. Handles express it in elements; storages receive it in bytes.
type CopyRegion struct {
	SrcOffset int
	DstOffset int
	Size      int
}

func NewCopyRegion(srcOffset, dstOffset, size int) CopyRegion {
	return CopyRegion{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size}
}

// ToBytes converts a region expressed in elements of elemSize bytes into a byte region
func (r CopyRegion) ToBytes(elemSize int) CopyRegion {
	return CopyRegion{
		SrcOffset: r.SrcOffset * elemSize,
		DstOffset: r.DstOffset * elemSize,
		Size:      r.Size * elemSize,
	}
}

// Fits checks that the region reads only from the first oldLen units and writes only to the first
// newLen units
func (r CopyRegion) Fits(oldLen, newLen int) error {
	if r.SrcOffset < 0 || r.DstOffset < 0 || r.Size < 0 {
		return errors.Newf("copy region %+v has a negative field", r)
	}
	if r.SrcOffset+r.Size > oldLen {
		return errors.Newf("copy region reads [%d, %d) but the source only holds %d", r.SrcOffset, r.SrcOffset+r.Size, oldLen)
	}
	if r.DstOffset+r.Size > newLen {
		return errors.Newf("copy region writes [%d, %d) but the destination only holds %d", r.DstOffset, r.DstOffset+r.Size, newLen)
	}
	return nil
}

func debugCheckRegion(region CopyRegion, oldSize, newSize int) {
	memutils.DebugValidate(memutils.ValidateFunc(func() error {
		return region.Fits(oldSize, newSize)
	}))
}
