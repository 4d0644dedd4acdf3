package quizgen

import "sort"

// SelectChunks picks evenly distributed chunk indices from a video's
// chunk list, one per requested question. When there are fewer chunks
// than requested questions, every index is returned. The result is
// sorted ascending and never longer than targetCount.
func SelectChunks(chunkCount, targetCount int) []int {
	if chunkCount <= 0 || targetCount <= 0 {
		return nil
	}

	if chunkCount <= targetCount {
		indices := make([]int, chunkCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	stride := chunkCount / targetCount
	indices := make([]int, 0, targetCount)
	for i := 0; i < targetCount; i++ {
		indices = append(indices, i*stride)
	}

	// Integer stride can leave gaps; top up from the middle third,
	// then anywhere, until we have enough distinct indices.
	if len(indices) < targetCount {
		taken := make(map[int]bool, len(indices))
		for _, idx := range indices {
			taken[idx] = true
		}

		remaining := targetCount - len(indices)
		middle := chunkCount / 3
		for i := 0; i < remaining; i++ {
			if middle+i < chunkCount && !taken[middle+i] {
				indices = append(indices, middle+i)
				taken[middle+i] = true
			} else {
				for j := 0; j < chunkCount; j++ {
					if !taken[j] {
						indices = append(indices, j)
						taken[j] = true
						break
					}
				}
			}
		}
	}

	sort.Ints(indices)
	if len(indices) > targetCount {
		indices = indices[:targetCount]
	}
	return indices
}
