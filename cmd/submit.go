package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/CorrelAid/compress_uploader/configs"
	"github.com/CorrelAid/compress_uploader/display"
	"github.com/CorrelAid/compress_uploader/logger"
	"github.com/CorrelAid/compress_uploader/models"
	"github.com/CorrelAid/compress_uploader/submitter"
	"github.com/CorrelAid/compress_uploader/validators"
)

// errSubmissionFailed is returned after the failure has been rendered, so
// Execute exits non-zero without printing it again.
var errSubmissionFailed = errors.New("submission failed")

type submitOptions struct {
	endpoint    string
	files       []string
	fields      []string
	html        bool
	downloadDir string
	maxSizeMB   int
}

func registerSubmitCommand() {
	var opts submitOptions

	submitCmd := &cobra.Command{
		Use:   "submit",
		Short: "submit a form with files to the compression endpoint",
		Example: `  compress-uploader submit --file photo.jpg
  compress-uploader submit --file file=report.pdf --field owner=ada --download-dir out/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, opts)
		},
	}

	f := submitCmd.Flags()
	f.StringVarP(&opts.endpoint, "endpoint", "e", "", "compression endpoint (default from config client.endpoint)")
	f.StringArrayVarP(&opts.files, "file", "f", nil, "file to upload as [field=]path, repeatable")
	f.StringArrayVar(&opts.fields, "field", nil, "text field as name=value, repeatable")
	f.BoolVar(&opts.html, "html", false, "print the response region as HTML")
	f.StringVarP(&opts.downloadDir, "download-dir", "d", "", "download the compressed file into this directory")
	f.IntVar(&opts.maxSizeMB, "max-size-mb", configs.DefaultMaxMultipartMB, "reject files larger than this before sending, 0 disables")

	rootCmd.AddCommand(submitCmd)
}

func buildForm(opts submitOptions) (*submitter.FileForm, error) {
	form := &submitter.FileForm{}

	for _, spec := range opts.fields {
		field, err := validators.ParseFieldSpec(spec)
		if err != nil {
			return nil, err
		}
		form.Fields = append(form.Fields, field)
	}

	for _, spec := range opts.files {
		field, path, err := validators.ParseFileSpec(spec, submitter.DefaultFileField)
		if err != nil {
			return nil, err
		}
		form.Files = append(form.Files, submitter.FileRef{Field: field, Path: path})
	}

	return form, nil
}

func runSubmit(cmd *cobra.Command, opts submitOptions) error {
	cfg := configs.GetConfig()
	log := logger.Logger()

	endpoint := opts.endpoint
	if endpoint == "" {
		endpoint = cfg.Client.Endpoint
	}

	form, err := buildForm(opts)
	if err != nil {
		return err
	}

	payload, err := form.Payload()
	if err != nil {
		return err
	}
	if err := validators.ValidateFormPayload(payload, int64(opts.maxSizeMB)<<20); err != nil {
		return err
	}
	log.Debug().Str("endpoint", endpoint).Str("payload", payloadSummary(payload)).Msg("submitting form")

	client := &http.Client{Timeout: cfg.Client.GetTimeoutDuration()}
	region := display.NewRegion()

	h, err := submitter.New(form, region, client,
		submitter.WithEndpoint(endpoint),
		submitter.WithLogger(*log))
	if err != nil {
		return err
	}

	res := h.Submit(cmd.Context(), submitter.NewSubmitEvent())

	out := cmd.OutOrStdout()
	if opts.html {
		fmt.Fprintln(out, region.HTML())
	} else {
		fmt.Fprint(out, region.Text())
	}

	if !res.OK() {
		return errSubmissionFailed
	}

	if opts.downloadDir != "" && res.File != "" {
		path, err := submitter.Download(cmd.Context(), client, endpoint, res.File, opts.downloadDir)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("downloaded compressed file")
		fmt.Fprintln(out, "Saved:", path)
	}

	return nil
}

func payloadSummary(p models.FormPayload) string {
	return fmt.Sprintf("%d field(s), %d file(s)", len(p.Fields), len(p.Files))
}
