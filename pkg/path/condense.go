package path

// CondenseTargets computes the longest common ancestor of a set of dirents
// and rewrites each as a path relative to that ancestor. If
// removeRedundancies is true, any target that is a descendant of another
// target in the list is dropped, and any target equal to the common
// ancestor is dropped too. Targets are expected to already be in
// canonical, comparable form (e.g. already made absolute by the caller);
// this operation doesn't resolve relative dirents against a working
// directory, since no such notion exists in the path algebra itself.
//
// The returned remainders preserve the relative order of the (non-removed)
// input targets.
func CondenseTargets(targets []string, removeRedundancies bool, style Style) (string, []string) {
	if len(targets) == 0 {
		return "", nil
	}
	if len(targets) == 1 {
		if removeRedundancies {
			return targets[0], nil
		}
		return targets[0], []string{""}
	}

	common := targets[0]
	for _, target := range targets[1:] {
		common = LongestAncestor(KindDirent, common, target, style)
	}

	removed := make([]bool, len(targets))
	if removeRedundancies {
		for i := range targets {
			if removed[i] {
				continue
			}
			for j := i + 1; j < len(targets); j++ {
				if removed[j] {
					continue
				}
				ancestor := LongestAncestor(KindDirent, targets[i], targets[j], style)
				if ancestor == "" {
					continue
				}
				switch ancestor {
				case targets[i]:
					removed[j] = true
				case targets[j]:
					removed[i] = true
				}
			}
		}
		for i, target := range targets {
			if !removed[i] && target == common {
				removed[i] = true
			}
		}
	}

	remainders := make([]string, 0, len(targets))
	for i, target := range targets {
		if removed[i] {
			continue
		}
		remainders = append(remainders, SkipAncestor(KindDirent, common, target, style))
	}
	return common, remainders
}
