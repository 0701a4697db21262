package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/onepct/pkg/journal"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerReflectTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerCanAddTodayTool(srv, svc)
	registerListTagsTool(srv, svc)
	registerAddTagTool(srv, svc)
	registerUpdateTagTool(srv, svc)
	registerRemoveTagTool(srv, svc)
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Record today's reflection. The text is stored as \"To become 1% better today, I \" plus the given text. Only one entry is allowed per calendar day."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The reflection, continuing the fixed prefix."),
		),
		mcp.WithArray("tags",
			mcp.Description("Tag symbols to attach, in selection order."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text string   `json:"text"`
			Tags []string `json:"tags"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, args.Text, args.Tags)
		if errors.Is(err, journal.ErrDayRecorded) {
			return mcp.NewToolResultError("an entry already exists for today"), nil
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, filtered and sorted most recent first."),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring to match against entry text."),
		),
		mcp.WithString("tag",
			mcp.Description("Keep only entries carrying this tag symbol."),
		),
		mcp.WithString("window",
			mcp.Description("Time window to keep."),
			mcp.Enum("all", "week", "month", "year", "day"),
		),
		mcp.WithString("on",
			mcp.Description("Calendar day (YYYY-MM-DD) for the day window."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Search string `json:"search"`
			Tag    string `json:"tag"`
			Window string `json:"window"`
			On     string `json:"on"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dtos, err := svc.ListEntries(ctx, ListOptions(args))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": dtos,
			"count":   len(dtos),
		})
	})
}

func registerReflectTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reflect",
		mcp.WithDescription("Look up entries recorded about N days ago, give or take a day. The app uses 7, 30, and 365."),
		mcp.WithNumber("days_ago",
			mcp.Required(),
			mcp.Description("How many days back to look."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		daysAgo, err := request.RequireInt("days_ago")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dtos, err := svc.Reflect(ctx, daysAgo)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": dtos,
			"count":   len(dtos),
		})
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Replace the text of an entry. Date and tags are unchanged."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to update."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Replacement text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.UpdateEntryText(ctx, id, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry. Deleting an unknown id is a no-op."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": id,
		})
	})
}

func registerCanAddTodayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"can_add_today",
		mcp.WithDescription("Report whether today's reflection is still open. Reminder schedulers only need this."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ok, err := svc.CanAddToday(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"canAddToday": ok,
		})
	})
}

func registerListTagsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tags",
		mcp.WithDescription("List the tag definitions in order, plus the symbols actually used on entries."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		defs, err := svc.ListTags(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		used, err := svc.DistinctTagsUsed(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tags": defs,
			"used": used,
		})
	})
}

func registerAddTagTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_tag",
		mcp.WithDescription("Append a tag definition to the registry."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Short display token, usually an emoji."),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Human-readable label."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AddTag(ctx, symbol, description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateTagTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_tag",
		mcp.WithDescription("Replace the symbol and description of the tag at the given position."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Ordinal position in the registry."),
		),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Replacement symbol."),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Replacement label."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.UpdateTag(ctx, index, symbol, description); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"updated": index,
		})
	})
}

func registerRemoveTagTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_tag",
		mcp.WithDescription("Remove the tag definition at the given position. Entries keep any symbols that referenced it."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Ordinal position in the registry."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.RemoveTag(ctx, index); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"removed": index,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
