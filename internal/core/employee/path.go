package employee

import "fmt"

// ValidatePath は学習パスの整合性を検証します。
// 前提条件はパス内の項目か修了済みコースを参照し、循環してはいけません。
func ValidatePath(e *Employee) error {
	index := make(map[string]int, len(e.LearningPath))
	for i, item := range e.LearningPath {
		if _, dup := index[item.ID]; dup {
			return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrDuplicateItem)
		}
		index[item.ID] = i

		if !isValidType(item.Type) {
			return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrInvalidItemType)
		}
		if !isValidStatus(item.Status) {
			return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrInvalidItemStatus)
		}
		if item.Progress < 0 || item.Progress > 100 {
			return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrProgressOutOfRange)
		}
		if (item.Status == StatusCompleted && item.Progress != 100) ||
			(item.Status == StatusNotStarted && item.Progress != 0) {
			return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrStatusMismatch)
		}
	}

	for skill, score := range e.AssessmentScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%s: %q: %w", e.Username, skill, ErrScoreOutOfRange)
		}
	}

	completed := make(map[string]struct{}, len(e.CompletedCourses))
	for _, c := range e.CompletedCourses {
		completed[c] = struct{}{}
	}

	for _, item := range e.LearningPath {
		if item.Prerequisite == "" {
			continue
		}
		if _, ok := index[item.Prerequisite]; ok {
			continue
		}
		if _, ok := completed[item.Prerequisite]; ok {
			continue
		}
		return fmt.Errorf("%s: %q requires %q: %w", e.Username, item.ID, item.Prerequisite, ErrUnknownPrereq)
	}

	// 各項目の前提条件は高々 1 つなので、チェーンを辿って自分に戻れば循環。
	for _, item := range e.LearningPath {
		seen := map[string]struct{}{item.ID: {}}
		next := item.Prerequisite
		for next != "" {
			if _, ok := seen[next]; ok {
				return fmt.Errorf("%s: %q: %w", e.Username, item.ID, ErrPrereqCycle)
			}
			seen[next] = struct{}{}
			i, ok := index[next]
			if !ok {
				break
			}
			next = e.LearningPath[i].Prerequisite
		}
	}

	return nil
}

// PrerequisiteTitle は前提条件の表示名を返します。パス外の参照は ID をそのまま返します。
func (e *Employee) PrerequisiteTitle(item PathItem) string {
	if item.Prerequisite == "" {
		return ""
	}
	if p, ok := e.FindItem(item.Prerequisite); ok {
		return p.Title
	}
	return item.Prerequisite
}
