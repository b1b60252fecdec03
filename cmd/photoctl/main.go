package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"photocapture/internal/config"
	"photocapture/internal/encoder"
	"photocapture/internal/gallery"
)

const requestTimeout = 30 * time.Second

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run drives the photo store from the command line. The store address
// comes from PHOTO_API_URL (or .env) unless -server overrides it.
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("photoctl", flag.ContinueOnError)
	cmd := flags.String("cmd", "list", "Command: list|upload|delete")
	photoID := flags.String("id", "", "Photo ID (for delete)")
	filePath := flags.String("file", "", "Image file to upload (for upload)")
	outDir := flags.String("out", "", "Write listed photos into this directory (for list)")
	serverFlag := flags.String("server", "", "Override photo store base URL (e.g. http://localhost:5000)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	baseURL := config.Load().PhotoAPIBaseURL
	if *serverFlag != "" {
		baseURL = strings.TrimRight(*serverFlag, "/")
	}
	client := gallery.NewClient(baseURL, nil)

	switch *cmd {
	case "list":
		return listPhotos(ctx, client, *outDir, out)
	case "upload":
		if *filePath == "" {
			return errors.New("-file required")
		}
		return uploadPhoto(ctx, client, *filePath, out)
	case "delete":
		if *photoID == "" {
			return errors.New("-id required")
		}
		if err := client.Delete(ctx, *photoID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted photo %s\n", *photoID)
		return nil
	default:
		return fmt.Errorf("unknown command %q", *cmd)
	}
}

func listPhotos(ctx context.Context, client *gallery.Client, outDir string, out io.Writer) error {
	records, err := client.List(ctx)
	if err != nil {
		return err
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILE NAME\tCONTENT TYPE\tBYTES")
	for _, rec := range records {
		data, err := base64.StdEncoding.DecodeString(rec.FileData)
		if err != nil {
			return fmt.Errorf("decode photo %s: %w", rec.ID, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", rec.ID, rec.FileName, rec.ContentType, len(data))

		if outDir != "" {
			name := fmt.Sprintf("%s_%s", rec.ID, filepath.Base(rec.FileName))
			if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
				return err
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d photos\n", len(records))
	return nil
}

func uploadPhoto(ctx context.Context, client *gallery.Client, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	file := &encoder.File{
		Name:        gallery.UploadFileName,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}
	if err := client.Upload(ctx, file); err != nil {
		return err
	}

	fmt.Fprintf(out, "Uploaded %s (%d bytes, %s)\n", path, len(data), file.ContentType)
	return nil
}
