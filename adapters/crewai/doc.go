// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package crewai 将已校验的工作流图翻译为 CrewAI 角色/任务编队格式。

# 概述

每个 agent 节点生成一个角色化 agent（role / goal / backstory）与恰好
一个配对 task；非 agent 节点（trigger / condition / loop / end）被静默
跳过。task 的 context 为该节点的 agent 前驱列表。流程类型默认自动推断：
仅当所有节点入度出度均不超过 1（严格链）时为 sequential，任何分支或
汇聚选择 hierarchical。

# 入口

  - Mapper.MapWorkflow — 整图翻译
  - Mapper.MapAgent    — 单 Agent 翻译（无图场景）
*/
package crewai
