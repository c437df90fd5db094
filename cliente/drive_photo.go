package cliente

import (
	"context"
	"fmt"
	"io"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DrivePhotoSource pulls product photos that were shot elsewhere and
// dropped into a shared Google Drive folder. TakePhoto downloads the
// most recently added image in that folder.
type DrivePhotoSource struct {
	client   *drive.Service
	folderID string
}

// NewDrivePhotoSource creates a DrivePhotoSource for the given folder
// credentialsPath should be the path to the Service Account JSON file
func NewDrivePhotoSource(ctx context.Context, credentialsPath, folderID string) (*DrivePhotoSource, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DrivePhotoSource{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DrivePhotoSource implements PhotoSource
var _ PhotoSource = (*DrivePhotoSource)(nil)

// TakePhoto downloads the newest image file from the Drive folder
func (d *DrivePhotoSource) TakePhoto(ctx context.Context) ([]byte, error) {
	query := fmt.Sprintf(
		"'%s' in parents and trashed=false and (mimeType='image/jpeg' or mimeType='image/png')",
		d.folderID,
	)

	r, err := d.client.Files.List().
		Context(ctx).
		Q(query).
		OrderBy("createdTime desc").
		PageSize(1).
		Fields("files(id, name, mimeType)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if len(r.Files) == 0 {
		return nil, fmt.Errorf("no images found in folder %s", d.folderID)
	}

	file := r.Files[0]
	log.Printf("📥 Downloading photo from Drive: %s (%s)", file.Name, file.Id)

	resp, err := d.client.Files.Get(file.Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download image %s: %w", file.Id, err)
	}
	defer resp.Body.Close()

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", file.Id, err)
	}

	return imageData, nil
}
