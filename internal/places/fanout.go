package places

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

// typeRestaurant restricts every fan-out query to food-serving establishments.
const typeRestaurant = "restaurant"

type indexedKeyword struct {
	idx     int
	keyword string
}

type indexedBatch struct {
	idx    int
	places []Place
}

// FanOut runs one nearby search per keyword concurrently and joins when every
// query has settled. A failed query degrades to an empty batch for its
// keyword only. Batches come back in keyword order regardless of which query
// finished first, so downstream dedupe stays deterministic.
func FanOut(ctx context.Context, searcher Searcher, keywords []string, base NearbyQuery) [][]Place {
	batches := make([][]Place, len(keywords))
	if len(keywords) == 0 {
		return batches
	}
	if searcher == nil || !searcher.Configured() {
		logx.WithContext(ctx).Infof("places: no provider credential, skipping search for %d keywords", len(keywords))
		return batches
	}

	log := logx.WithContext(ctx)
	err := mr.MapReduceVoid(func(source chan<- indexedKeyword) {
		for i, kw := range keywords {
			source <- indexedKeyword{idx: i, keyword: kw}
		}
	}, func(item indexedKeyword, writer mr.Writer[indexedBatch], cancel func(error)) {
		q := base
		q.Keyword = item.keyword
		q.Type = typeRestaurant

		res, err := searcher.NearbySearch(ctx, q)
		if err != nil {
			log.Errorf("places: keyword %q search failed: %v", item.keyword, err)
			writer.Write(indexedBatch{idx: item.idx})
			return
		}
		writer.Write(indexedBatch{idx: item.idx, places: res.Places})
	}, func(pipe <-chan indexedBatch, cancel func(error)) {
		for batch := range pipe {
			batches[batch.idx] = batch.places
		}
	}, mr.WithContext(ctx))
	if err != nil {
		log.Errorf("places: fan-out aborted: %v", err)
	}

	return batches
}
