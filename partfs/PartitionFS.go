// Package partfs projects a partition table onto a flat FUSE
// directory: one regular file per partition, each a fixed byte range
// window onto the shared backing store.
package partfs

import (
	"context"
	"io"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	iipart "github.com/ksherlock/ii-part"
	"github.com/ksherlock/ii-part/store"
)

const baseIno = 1000

// Root is the single directory of the filesystem. The table and store
// are built before the mount and never change afterwards, so every
// operation is a stateless lookup plus pass-through I/O.
type Root struct {
	fs.Inode

	table iipart.Table
	store *store.Store
}

func NewRoot(table iipart.Table, st *store.Store) *Root {
	return &Root{table: table, store: st}
}

var _ = (fs.NodeOnAdder)((*Root)(nil))
var _ = (fs.NodeGetattrer)((*Root)(nil))
var _ = (fs.NodeReaddirer)((*Root)(nil))
var _ = (fs.NodeStatfser)((*Root)(nil))

// OnAdd populates the directory, one persistent inode per partition.
// A duplicate name keeps its first entry; AddChild would otherwise
// replace it and break first-match lookup.
func (r *Root) OnAdd(ctx context.Context) {
	for k, p := range r.table {
		if r.GetChild(p.Name) != nil {
			// duplicate name, the first entry wins
			continue
		}
		child := r.NewPersistentInode(ctx, &partition{record: p, store: r.store}, fs.StableAttr{
			Mode: fuse.S_IFREG,
			Ino:  baseIno + uint64(k),
		})
		r.AddChild(p.Name, child, true)
	}
}

func (r *Root) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Mode = 0755
	out.Nlink = uint32(2 + len(r.table))
	return 0
}

// Readdir lists the partitions in table order.
func (r *Root) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	entries := make([]fuse.DirEntry, 0, len(r.table)+2)
	entries = append(entries,
		fuse.DirEntry{Name: ".", Mode: fuse.S_IFDIR},
		fuse.DirEntry{Name: "..", Mode: fuse.S_IFDIR},
	)
	for k, p := range r.table {
		entries = append(entries, fuse.DirEntry{
			Name: p.Name,
			Mode: fuse.S_IFREG,
			Ino:  baseIno + uint64(k),
		})
	}
	return fs.NewListDirStream(entries), 0
}

// Statfs reports the fixed view: 512 byte blocks, nothing allocatable.
func (r *Root) Statfs(ctx context.Context, out *fuse.StatfsOut) syscall.Errno {
	out.Bsize = iipart.BlockSize
	out.Frsize = iipart.BlockSize
	out.Blocks = uint64(r.store.Size() / iipart.BlockSize)
	out.Bfree = 0
	out.Bavail = 0
	out.Files = uint64(len(r.table))
	out.NameLen = 32
	return 0
}

type partition struct {
	fs.Inode

	record iipart.Partition
	store  *store.Store
}

var _ = (fs.NodeOpener)((*partition)(nil))
var _ = (fs.NodeGetattrer)((*partition)(nil))
var _ = (fs.NodeReader)((*partition)(nil))
var _ = (fs.NodeWriter)((*partition)(nil))
var _ = (fs.NodeFsyncer)((*partition)(nil))

func (p *partition) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	out.Size = uint64(p.record.Length)
	out.Blocks = uint64(p.record.Length / iipart.BlockSize)
	if p.store.ReadWrite() {
		out.Mode = 0644
	} else {
		out.Mode = 0444
	}
	out.Nlink = 1
	return 0
}

// Open keeps no per handle state; every operation resolves against the
// immutable record again.
func (p *partition) Open(ctx context.Context, openFlags uint32) (fh fs.FileHandle, fuseFlags uint32, errno syscall.Errno) {
	return p, fuse.FOPEN_DIRECT_IO, 0
}

func (p *partition) Read(ctx context.Context, fh fs.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	if off >= p.record.Length {
		return fuse.ReadResultData(nil), 0
	}
	if off+int64(len(dest)) > p.record.Length {
		dest = dest[:p.record.Length-off]
	}

	n, err := p.store.ReadAt(dest, p.record.Start+off)
	if err != nil && err != io.EOF {
		return nil, fs.ToErrno(err)
	}
	return fuse.ReadResultData(dest[:n]), 0
}

func (p *partition) Write(ctx context.Context, fh fs.FileHandle, data []byte, off int64) (uint32, syscall.Errno) {
	if !p.store.ReadWrite() {
		return 0, syscall.EROFS
	}
	if off >= p.record.Length {
		// the window cannot grow
		return 0, syscall.ENOSPC
	}
	if off+int64(len(data)) > p.record.Length {
		data = data[:p.record.Length-off]
	}

	n, err := p.store.WriteAt(data, p.record.Start+off)
	if err != nil {
		return uint32(n), fs.ToErrno(err)
	}
	return uint32(n), 0
}

func (p *partition) Fsync(ctx context.Context, fh fs.FileHandle, flags uint32) syscall.Errno {
	return fs.ToErrno(p.store.Sync())
}
