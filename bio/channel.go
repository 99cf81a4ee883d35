package bio

import (
	"github.com/openworm/channelgraph/schema"
	biovocab "github.com/openworm/channelgraph/vocabulary/bio"
)

// DataObject is the root entity class. It declares no attributes of its own;
// identity and reference-mode handling live in the base constructor.
var DataObject = schema.MustDefine("data_object", nil)

// Channel is an ion channel. It is the target of homology links from
// homology channel models.
var Channel = schema.MustDefine("channel", DataObject,
	schema.Declaration{Name: "name", Predicate: biovocab.ChannelName},
	schema.Declaration{Name: "description", Predicate: biovocab.ChannelDescription},
	schema.Declaration{Name: "gene_name", Predicate: biovocab.ChannelGeneName},
)

// NewChannel constructs a channel instance.
func NewChannel(args schema.Args) (*schema.Instance, error) {
	return schema.New(Channel, args)
}
