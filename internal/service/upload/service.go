package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"caterfind/internal/errs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=./service.go -destination=./mocks/upload.mock.go -package=uploadmocks Service

// Service 文件上传。落到本地目录，返回可访问的相对路径。
type Service interface {
	Save(ctx context.Context, filename string, src io.Reader) (string, error)
	// Delete 按 Save 返回的URL删除文件，文件已不存在视为成功
	Delete(ctx context.Context, fileURL string) error
}

type uploadService struct {
	// dir 存储目录，启动时建好
	dir string
	// urlPrefix 返回给前端的访问前缀
	urlPrefix string
}

func (svc *uploadService) Save(_ context.Context, filename string, src io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	if filename == "" || strings.Contains(filename, "..") {
		return "", fmt.Errorf("%w: 文件名非法: %q", errs.ErrUploadFailed, filename)
	}
	// 随机文件名，避免覆盖和路径猜测
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(svc.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrUploadFailed, err)
	}
	defer func() { _ = dst.Close() }()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrUploadFailed, err)
	}
	return svc.urlPrefix + "/" + name, nil
}

func (svc *uploadService) Delete(_ context.Context, fileURL string) error {
	name, ok := strings.CutPrefix(fileURL, svc.urlPrefix+"/")
	// 只认自己签发的URL，文件名里不允许再出现路径
	if !ok || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("%w: 文件URL非法: %q", errs.ErrUploadFailed, fileURL)
	}
	err := os.Remove(filepath.Join(svc.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", errs.ErrUploadFailed, err)
	}
	return nil
}

// NewService 创建上传服务，目录不存在时自动创建
func NewService(dir, urlPrefix string) (Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: 创建上传目录失败: %w", errs.ErrUploadFailed, err)
	}
	return &uploadService{dir: dir, urlPrefix: urlPrefix}, nil
}
