package burnlib

import (
	"os"
	"path/filepath"

	"github.com/wgdzlh/burnlib/log"

	"go.uber.org/zap"
)

// NBR影像获取接口：同步返回已配准的火前/火后NBR栅格文件对。
// 远端获取（影像集检索、去云、导出任务）由实现方自理，核心流程不感知。
type NbrProvider interface {
	FetchNbrPair(req NbrRequest) (NbrPair, error)
}

// 本地目录Provider：按{AoiName}_pre_nbr.tif / {AoiName}_post_nbr.tif约定查找已导出的影像对
type DirProvider struct {
	Dir string
}

func (p DirProvider) FetchNbrPair(req NbrRequest) (pair NbrPair, err error) {
	pre := filepath.Join(p.Dir, req.AoiName+PRE_NBR_SUFFIX)
	post := filepath.Join(p.Dir, req.AoiName+POST_NBR_SUFFIX)
	for _, tif := range []string{pre, post} {
		if _, e := os.Stat(tif); e != nil {
			log.Warn("DirProvider: nbr raster not found", zap.String("tif", tif))
			err = ErrNbrPairMissing
			return
		}
	}
	pair.PrePath = pre
	pair.PostPath = post
	return
}
