package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// itemView is the printed form of a visible item.
type itemView struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name,omitempty"`
	NodeType string `json:"node_type,omitempty"`
	Latname  string `json:"taxon_latname,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func newItemView(it *model.Item) itemView {
	v := itemView{UUID: it.UUID, Name: it.Name, NodeType: it.NodeType, ImageURL: it.ImageURL}
	if it.Taxon != nil {
		v.Latname = it.Taxon.Latname
	}
	return v
}

func printItems(w io.Writer, items []*model.Item, total int) {
	fmt.Fprintf(w, "%s %s of %d\n", yellow("Visible:"), green(len(items)), total)
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = it.UUID
		}
		fmt.Fprintf(w, "  %s %s", green("●"), name)
		if it.Taxon != nil && it.Taxon.Latname != "" {
			fmt.Fprintf(w, " %s", gray("("+it.Taxon.Latname+")"))
		}
		fmt.Fprintf(w, " %s\n", gray(it.UUID))
	}
}

func printPassError(w io.Writer, res *match.Result) {
	if res == nil || res.Err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", red("Warning:"), res.Err)
}
