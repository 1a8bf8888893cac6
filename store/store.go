/*
NAME
  store.go

AUTHORS
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package store

import (
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/utils/ioext"

	"github.com/ausocean/tlc/config"
)

// SaveData writes a run's outputs at rest: the Nu matrix CSV, the Jet-
// colormap PNG, and the TOML setting snapshot, all rooted at
// cfg.SaveRootDir/{nu_matrix,nu_plot,config}/cfg.Name.* (spec §6).
//
// If audit is non-nil, the CSV write is fanned out to it alongside the file
// on disk via ioext.MultiWriteCloser, the same pattern revid's pipeline uses
// to tee a stream to more than one sender.
func SaveData(cfg config.Config, nu *mat.Dense, nuNanMean float64, audit io.WriteCloser) error {
	if err := os.MkdirAll(filepath.Join(cfg.SaveRootDir, "nu_matrix"), 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(cfg.SaveRootDir, "nu_plot"), 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(cfg.SaveRootDir, "config"), 0o755); err != nil {
		return err
	}

	csvPath := filepath.Join(cfg.SaveRootDir, "nu_matrix", cfg.Name+".csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	var w io.WriteCloser = f
	if audit != nil {
		w = ioext.MultiWriteCloser(f, audit)
	}
	if err := WriteNuCSV(w, nu); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	pngPath := filepath.Join(cfg.SaveRootDir, "nu_plot", cfg.Name+".png")
	if err := WriteNuPNG(pngPath, nu, 0, 0); err != nil {
		return err
	}

	tomlPath := filepath.Join(cfg.SaveRootDir, "config", cfg.Name+".toml")
	tf, err := os.Create(tomlPath)
	if err != nil {
		return err
	}
	defer tf.Close()
	return WriteSnapshot(tf, BuildSnapshot(cfg, nuNanMean))
}
