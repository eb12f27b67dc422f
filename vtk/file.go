package vtk

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/internal/pool"
)

// SaveMeshFile writes mesh to the file at path. See WriteMesh.
//
// The document is rendered in memory, written to a temporary file next to
// path and renamed over path only once it is complete. On error, path is left
// untouched and no temporary file remains.
func (w *Writer) SaveMeshFile(path string, mesh *cloud.PolygonMesh) (Stats, error) {
	buf, stats, err := w.encodeMesh(mesh)
	if err != nil {
		return Stats{}, err
	}
	defer pool.PutDocumentBuffer(buf)

	return w.saveFile(path, buf, stats)
}

// SaveCloudFile writes pc to the file at path. See WriteCloud and
// SaveMeshFile.
func (w *Writer) SaveCloudFile(path string, pc *cloud.PointCloud) (Stats, error) {
	buf, stats, err := w.encodeCloud(pc)
	if err != nil {
		return Stats{}, err
	}
	defer pool.PutDocumentBuffer(buf)

	return w.saveFile(path, buf, stats)
}

func (w *Writer) saveFile(path string, buf *pool.ByteBuffer, stats Stats) (Stats, error) {
	out, err := w.compressed(buf)
	if err != nil {
		return Stats{}, err
	}

	if err := writeFileAtomic(path, out, w.fileMode); err != nil {
		return Stats{}, err
	}
	stats.Written = int64(len(out))

	w.logger.Info("saved vtk file",
		zap.String("path", path),
		zap.Int("points", stats.Points),
		zap.Stringer("compression", w.compression),
		zap.Int64("bytes", stats.Written))

	return stats, nil
}

// writeFileAtomic writes data to a temporary file in the directory of path and
// renames it into place. The temporary file is closed and removed on every
// failure path.
func writeFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmp := f.Name()

	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	closed = true
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}

	return nil
}
