package helper

import "mime/multipart"

// ==============================
// File collector
// ==============================

type CollectOptions struct {
	// Multipart field names to look at, in order of preference.
	FileFieldCandidates []string
}

var defaultFileFieldCandidates = []string{"file", "files", "files[]"}

// CollectUploadFiles returns the non-empty file headers found under the candidate
// fields, in candidate order, plus the keys that had files.
func CollectUploadFiles(form *multipart.Form, opt *CollectOptions) (out []*multipart.FileHeader, usedKeys []string) {
	if form == nil || form.File == nil {
		return nil, nil
	}
	candidates := defaultFileFieldCandidates
	if opt != nil && len(opt.FileFieldCandidates) > 0 {
		candidates = opt.FileFieldCandidates
	}

	for _, key := range candidates {
		fhs, ok := form.File[key]
		if !ok || len(fhs) == 0 {
			continue
		}
		hasFile := false
		for _, fh := range fhs {
			if fh != nil && fh.Filename != "" {
				out = append(out, fh)
				hasFile = true
			}
		}
		if hasFile {
			usedKeys = append(usedKeys, key)
		}
	}
	return out, usedKeys
}
