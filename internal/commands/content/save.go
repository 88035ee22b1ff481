package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
	"github.com/pagecraft-cms/pagecraft/internal/commands"
)

const saveBlockContentMessageType = "pagecraft.content.block.save"

// SaveBlockContentCommand requests a full write of one block's content
// document. The document is normalized before persisting, so callers may
// submit partial or legacy-shaped payloads.
type SaveBlockContentCommand struct {
	ID        uuid.UUID        `json:"id"`
	PageID    uuid.UUID        `json:"page_id"`
	Region    string           `json:"region"`
	Position  int              `json:"position"`
	BlockType blocks.BlockType `json:"block_type"`
	VariantID string           `json:"variant_id"`
	Content   content.Document `json:"content"`
}

// Type implements command.Message.
func (SaveBlockContentCommand) Type() string { return saveBlockContentMessageType }

// Validate ensures the command names a page placement and a block type.
func (m SaveBlockContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.PageID == uuid.Nil {
		errs["page_id"] = validation.NewError("pagecraft.content.block.save.page_id_required", "page_id is required")
	}
	if m.Region == "" {
		errs["region"] = validation.NewError("pagecraft.content.block.save.region_required", "region is required")
	}
	if m.Position < 0 {
		errs["position"] = validation.NewError("pagecraft.content.block.save.position_invalid", "position cannot be negative")
	}
	if m.BlockType == "" {
		errs["block_type"] = validation.NewError("pagecraft.content.block.save.block_type_required", "block_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewSaveBlockContentHandler wires the save command to the document service.
func NewSaveBlockContentHandler(service documents.Service, opts ...commands.HandlerOption[SaveBlockContentCommand]) *commands.Handler[SaveBlockContentCommand] {
	exec := func(ctx context.Context, msg SaveBlockContentCommand) error {
		_, err := service.Save(ctx, documents.SaveInput{
			ID:        msg.ID,
			PageID:    msg.PageID,
			Region:    msg.Region,
			Position:  msg.Position,
			BlockType: msg.BlockType,
			VariantID: msg.VariantID,
			Content:   msg.Content,
		})
		return err
	}
	opts = append([]commands.HandlerOption[SaveBlockContentCommand]{
		commands.WithOperation[SaveBlockContentCommand]("content.block.save"),
	}, opts...)
	return commands.NewHandler(exec, opts...)
}
